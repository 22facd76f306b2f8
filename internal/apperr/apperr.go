// Package apperr defines the closed set of error kinds used by the service
// layer. Callers branch on the kind instead of inspecting message strings.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a service-layer failure.
type Kind int

const (
	// KindUnknown is the zero value for errors that carry no kind.
	KindUnknown Kind = iota
	// KindConnectivity means no valid Primary Store configuration exists.
	// It is expected and permanent for the process lifetime.
	KindConnectivity
	// KindUpstream means a network request to the store or the remote
	// catalog source failed. Transient.
	KindUpstream
	// KindAggregation means a review was inserted but the owning book's
	// aggregate recompute failed. The review write stands.
	KindAggregation
	// KindNotFound means the requested row does not exist.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindConnectivity:
		return "connectivity_unavailable"
	case KindUpstream:
		return "upstream_request_failed"
	case KindAggregation:
		return "aggregation_failed"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error carries a kind, the operation that failed, and an optional cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// E wraps err with a kind and operation name.
func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of err, or KindUnknown if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

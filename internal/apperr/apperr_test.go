package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := E(KindUpstream, "catalog.ListByRating", cause)

	assert.Equal(t, KindUpstream, KindOf(err))
	assert.True(t, Is(err, KindUpstream))
	assert.False(t, Is(err, KindNotFound))
	assert.ErrorIs(t, err, cause)
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", E(KindAggregation, "review.Recompute", nil))
	assert.Equal(t, KindAggregation, KindOf(err))
}

func TestKindOf_Plain(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestErrorString(t *testing.T) {
	err := E(KindNotFound, "review.Insert", errors.New("no rows"))
	assert.Equal(t, "review.Insert: not_found: no rows", err.Error())

	bare := E(KindConnectivity, "review.Add", nil)
	assert.Equal(t, "review.Add: connectivity_unavailable", bare.Error())
}

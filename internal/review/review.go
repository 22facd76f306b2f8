// Package review reads and appends reader reviews and keeps the owning
// book's aggregate rating fields consistent with its review set.
package review

import (
	"errors"
	"time"
)

// ErrBookNotFound is returned when a review references a book that does not
// exist in the Primary Store. Fallback-sourced books are never persisted, so
// reviews cannot attach to them.
var ErrBookNotFound = errors.New("book not found")

// Review is an immutable reader review. The submitter identity is
// display-only: not authenticated, not unique.
type Review struct {
	ID         string    `json:"id"`
	BookID     string    `json:"book_id"`
	UserName   string    `json:"user_name"`
	UserAvatar string    `json:"user_avatar"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewReview is the insert payload; id and created_at are server-assigned.
type NewReview struct {
	BookID     string
	UserName   string
	UserAvatar string
	Rating     int
	Comment    string
}

// Package catalog produces the unified book list the app browses: the
// Primary Store when it has data, Open Library as a best-effort fallback.
package catalog

import (
	"time"
)

// Book is a catalog entry. Primary Store rows carry stable IDs and live
// aggregate fields; fallback rows are materialized per request with
// synthesized IDs and zeroed aggregates.
type Book struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	Description    string    `json:"description"`
	CoverImage     string    `json:"cover_image"`
	BackCoverImage *string   `json:"back_cover_image"`
	Category       string    `json:"category"`
	AverageRating  float64   `json:"average_rating"`
	TotalReviews   int       `json:"total_reviews"`
	CreatedAt      time.Time `json:"created_at"`
}

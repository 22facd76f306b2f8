package review

import "context"

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=review

// Repository defines the contract for review storage and the aggregate
// writes on the owning book row.
type Repository interface {
	ListByBook(ctx context.Context, bookID string) ([]Review, error)
	Insert(ctx context.Context, r NewReview) (Review, error)
	RatingsFor(ctx context.Context, bookID string) ([]int, error)
	UpdateBookAggregates(ctx context.Context, bookID string, averageRating float64, totalReviews int) error
}

package review

import (
	"context"
	"errors"
	"math"

	"kitapkesif/internal/apperr"
	"kitapkesif/internal/config"
)

// Service provides review reads and writes. Reads degrade to an empty list
// when no Primary Store connection is configured; writes fail, since there
// is no fallback write path.
type Service struct {
	repo  Repository
	state config.StoreState
}

func NewService(repo Repository, state config.StoreState) *Service {
	return &Service{repo: repo, state: state}
}

// FetchReviews returns all reviews for a book, newest first.
func (s *Service) FetchReviews(ctx context.Context, bookID string) ([]Review, error) {
	if s.state != config.StoreConfigured {
		return []Review{}, nil
	}

	reviews, err := s.repo.ListByBook(ctx, bookID)
	if err != nil {
		return nil, apperr.E(apperr.KindUpstream, "review.fetch", err)
	}
	return reviews, nil
}

// AddReview inserts the review, then synchronously recomputes the owning
// book's aggregates so the caller observes consistent values. If the
// recompute fails after a successful insert, the review persists and the
// inserted row is returned alongside an aggregation error; the displayed
// aggregate stays stale until the next recompute.
func (s *Service) AddReview(ctx context.Context, nr NewReview) (Review, error) {
	if s.state != config.StoreConfigured {
		return Review{}, apperr.E(apperr.KindConnectivity, "review.add", errors.New("primary store not configured"))
	}

	inserted, err := s.repo.Insert(ctx, nr)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			return Review{}, apperr.E(apperr.KindNotFound, "review.add", err)
		}
		return Review{}, apperr.E(apperr.KindUpstream, "review.add", err)
	}

	if err := s.RecomputeAggregates(ctx, nr.BookID); err != nil {
		return inserted, apperr.E(apperr.KindAggregation, "review.add", err)
	}
	return inserted, nil
}

// RecomputeAggregates rereads the full review set and persists the rounded
// average and count. Always a full recompute, never a running average, so
// repeated runs with no intervening writes are idempotent and floating-point
// drift cannot accumulate. Books with no reviews are left untouched.
func (s *Service) RecomputeAggregates(ctx context.Context, bookID string) error {
	ratings, err := s.repo.RatingsFor(ctx, bookID)
	if err != nil {
		return err
	}
	if len(ratings) == 0 {
		return nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	average := math.Round(float64(sum)/float64(len(ratings))*10) / 10

	return s.repo.UpdateBookAggregates(ctx, bookID, average, len(ratings))
}

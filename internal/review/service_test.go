package review

import (
	"context"
	"errors"
	"testing"

	"kitapkesif/internal/apperr"
	"kitapkesif/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) ListByBook(ctx context.Context, bookID string) ([]Review, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Review), args.Error(1)
}

func (m *mockRepo) Insert(ctx context.Context, r NewReview) (Review, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(Review), args.Error(1)
}

func (m *mockRepo) RatingsFor(ctx context.Context, bookID string) ([]int, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *mockRepo) UpdateBookAggregates(ctx context.Context, bookID string, averageRating float64, totalReviews int) error {
	args := m.Called(ctx, bookID, averageRating, totalReviews)
	return args.Error(0)
}

func TestFetchReviews(t *testing.T) {
	t.Run("unconfigured store yields empty list, not an error", func(t *testing.T) {
		svc := NewService(nil, config.StoreUnconfigured)

		got, err := svc.FetchReviews(context.Background(), "b1")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("configured store delegates to the repository", func(t *testing.T) {
		repo := new(mockRepo)
		reviews := []Review{{ID: "r1", BookID: "b1", Rating: 5}}
		repo.On("ListByBook", mock.Anything, "b1").Return(reviews, nil).Once()

		svc := NewService(repo, config.StoreConfigured)

		got, err := svc.FetchReviews(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, reviews, got)
		repo.AssertExpectations(t)
	})
}

func TestAddReview(t *testing.T) {
	nr := NewReview{BookID: "b1", UserName: "Ayşe", Rating: 5, Comment: "Harika"}

	t.Run("unconfigured store rejects writes", func(t *testing.T) {
		svc := NewService(nil, config.StoreUnconfigured)

		_, err := svc.AddReview(context.Background(), nr)
		assert.True(t, apperr.Is(err, apperr.KindConnectivity))
	})

	t.Run("recomputes aggregates after insert", func(t *testing.T) {
		repo := new(mockRepo)
		inserted := Review{ID: "r3", BookID: "b1", Rating: 5}
		repo.On("Insert", mock.Anything, nr).Return(inserted, nil).Once()
		// Book had ratings 2 and 4; adding 5 makes (2+4+5)/3 = 3.666… → 3.7.
		repo.On("RatingsFor", mock.Anything, "b1").Return([]int{2, 4, 5}, nil).Once()
		repo.On("UpdateBookAggregates", mock.Anything, "b1", 3.7, 3).Return(nil).Once()

		svc := NewService(repo, config.StoreConfigured)

		got, err := svc.AddReview(context.Background(), nr)
		require.NoError(t, err)
		assert.Equal(t, inserted, got)
		repo.AssertExpectations(t)
	})

	t.Run("unknown book maps to not found", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("Insert", mock.Anything, nr).Return(Review{}, ErrBookNotFound).Once()

		svc := NewService(repo, config.StoreConfigured)

		_, err := svc.AddReview(context.Background(), nr)
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})

	t.Run("recompute failure surfaces but keeps the insert", func(t *testing.T) {
		repo := new(mockRepo)
		inserted := Review{ID: "r3", BookID: "b1", Rating: 5}
		repo.On("Insert", mock.Anything, nr).Return(inserted, nil).Once()
		repo.On("RatingsFor", mock.Anything, "b1").Return(nil, errors.New("timeout")).Once()

		svc := NewService(repo, config.StoreConfigured)

		got, err := svc.AddReview(context.Background(), nr)
		assert.True(t, apperr.Is(err, apperr.KindAggregation))
		assert.Equal(t, inserted, got, "the persisted row is still returned")
	})
}

func TestRecomputeAggregates(t *testing.T) {
	t.Run("idempotent for a fixed review set", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("RatingsFor", mock.Anything, "b1").Return([]int{3, 4}, nil).Twice()
		repo.On("UpdateBookAggregates", mock.Anything, "b1", 3.5, 2).Return(nil).Twice()

		svc := NewService(repo, config.StoreConfigured)

		require.NoError(t, svc.RecomputeAggregates(context.Background(), "b1"))
		require.NoError(t, svc.RecomputeAggregates(context.Background(), "b1"))
		repo.AssertExpectations(t)
	})

	t.Run("no reviews writes nothing", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("RatingsFor", mock.Anything, "b1").Return([]int{}, nil).Once()

		svc := NewService(repo, config.StoreConfigured)

		require.NoError(t, svc.RecomputeAggregates(context.Background(), "b1"))
		repo.AssertNotCalled(t, "UpdateBookAggregates")
	})

	t.Run("average stays within rating bounds", func(t *testing.T) {
		cases := [][]int{
			{1}, {5}, {1, 1, 1}, {5, 5, 5, 5}, {1, 2, 3, 4, 5}, {2, 2, 3},
		}
		for _, ratings := range cases {
			repo := new(mockRepo)
			repo.On("RatingsFor", mock.Anything, "b1").Return(ratings, nil).Once()
			repo.On("UpdateBookAggregates", mock.Anything, "b1",
				mock.MatchedBy(func(avg float64) bool { return avg >= 0 && avg <= 5 }),
				len(ratings),
			).Return(nil).Once()

			svc := NewService(repo, config.StoreConfigured)
			require.NoError(t, svc.RecomputeAggregates(context.Background(), "b1"))
			repo.AssertExpectations(t)
		}
	})
}

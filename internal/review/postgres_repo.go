package review

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const fkViolation = "23503"

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) ListByBook(ctx context.Context, bookID string) ([]Review, error) {
	const query = `
		SELECT id, book_id, user_name, user_avatar, rating, comment, created_at
		FROM reviews
		WHERE book_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Review{}
	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ID, &rv.BookID, &rv.UserName, &rv.UserAvatar,
			&rv.Rating, &rv.Comment, &rv.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Insert(ctx context.Context, nr NewReview) (Review, error) {
	const query = `
		INSERT INTO reviews (book_id, user_name, user_avatar, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, book_id, user_name, user_avatar, rating, comment, created_at`

	var rv Review
	err := r.db.QueryRow(ctx, query, nr.BookID, nr.UserName, nr.UserAvatar, nr.Rating, nr.Comment).Scan(
		&rv.ID, &rv.BookID, &rv.UserName, &rv.UserAvatar,
		&rv.Rating, &rv.Comment, &rv.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
			return Review{}, ErrBookNotFound
		}
		return Review{}, err
	}
	return rv, nil
}

func (r *PostgresRepo) RatingsFor(ctx context.Context, bookID string) ([]int, error) {
	rows, err := r.db.Query(ctx, `SELECT rating FROM reviews WHERE book_id = $1`, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return nil, err
		}
		out = append(out, rating)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) UpdateBookAggregates(ctx context.Context, bookID string, averageRating float64, totalReviews int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE books SET average_rating = $2, total_reviews = $3 WHERE id = $1`,
		bookID, averageRating, totalReviews,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBookNotFound
	}
	return nil
}

package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// ListByRating returns every book, best rated first. Catalog sizes are in the
// low thousands, so no pagination here.
func (r *PostgresRepo) ListByRating(ctx context.Context) ([]Book, error) {
	const query = `
		SELECT id, title, author, description, cover_image, back_cover_image,
		       category, average_rating, total_reviews, created_at
		FROM books
		ORDER BY average_rating DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Description, &b.CoverImage,
			&b.BackCoverImage, &b.Category, &b.AverageRating, &b.TotalReviews,
			&b.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

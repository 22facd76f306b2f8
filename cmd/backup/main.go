// Command backup dumps the books and reviews tables to a timestamped JSON
// file that cmd/restore can load back.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"kitapkesif/internal/catalog"
	"kitapkesif/internal/review"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

type dump struct {
	CreatedAt time.Time       `json:"created_at"`
	Books     []catalog.Book  `json:"books"`
	Reviews   []review.Review `json:"reviews"`
}

func main() {
	outDir := flag.String("out", "backups", "Directory to write the backup file into")
	flag.Parse()

	_ = godotenv.Load(".env.local")

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is required to back up the database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	d := dump{CreatedAt: time.Now()}

	if d.Books, err = readBooks(ctx, pool); err != nil {
		log.Fatalf("Failed to read books: %v", err)
	}
	if d.Reviews, err = readReviews(ctx, pool); err != nil {
		log.Fatalf("Failed to read reviews: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *outDir, err)
	}

	path := fmt.Sprintf("%s/backup-%s.json", *outDir, d.CreatedAt.Format("2006-01-02-150405"))
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		log.Fatalf("Failed to write backup: %v", err)
	}

	log.Printf("Backed up %d books and %d reviews to %s", len(d.Books), len(d.Reviews), path)
}

func readBooks(ctx context.Context, pool *pgxpool.Pool) ([]catalog.Book, error) {
	rows, err := pool.Query(ctx, `
		SELECT id, title, author, description, cover_image, back_cover_image,
		       category, average_rating, total_reviews, created_at
		FROM books ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Book
	for rows.Next() {
		var b catalog.Book
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

func readReviews(ctx context.Context, pool *pgxpool.Pool) ([]review.Review, error) {
	rows, err := pool.Query(ctx, `
		SELECT id, book_id, user_name, user_avatar, rating, comment, created_at
		FROM reviews ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []review.Review
	for rows.Next() {
		var rv review.Review
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

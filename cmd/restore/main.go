// Command restore loads a backup file produced by cmd/backup. Rows keep
// their original IDs and timestamps; existing rows with the same ID are
// overwritten. Restart or cache-clear any live process afterwards so it does
// not serve a stale catalog.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"kitapkesif/internal/catalog"
	"kitapkesif/internal/review"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

type dump struct {
	CreatedAt time.Time       `json:"created_at"`
	Books     []catalog.Book  `json:"books"`
	Reviews   []review.Review `json:"reviews"`
}

func main() {
	file := flag.String("file", "", "Backup file to restore")
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}

	_ = godotenv.Load(".env.local")

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is required to restore the database")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}

	var d dump
	if err := json.Unmarshal(data, &d); err != nil {
		log.Fatalf("Failed to parse backup: %v", err)
	}
	log.Printf("Restoring backup from %s: %d books, %d reviews", d.CreatedAt.Format(time.RFC3339), len(d.Books), len(d.Reviews))

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	if err := restoreBooks(ctx, tx, d.Books); err != nil {
		log.Fatalf("Failed to restore books: %v", err)
	}
	if err := restoreReviews(ctx, tx, d.Reviews); err != nil {
		log.Fatalf("Failed to restore reviews: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}
	log.Println("Restore complete")
}

func restoreBooks(ctx context.Context, tx pgx.Tx, books []catalog.Book) error {
	const sql = `
		INSERT INTO books (id, title, author, description, cover_image, back_cover_image, category, average_rating, total_reviews, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			author = EXCLUDED.author,
			description = EXCLUDED.description,
			cover_image = EXCLUDED.cover_image,
			back_cover_image = EXCLUDED.back_cover_image,
			category = EXCLUDED.category,
			average_rating = EXCLUDED.average_rating,
			total_reviews = EXCLUDED.total_reviews`

	for _, b := range books {
		if _, err := tx.Exec(ctx, sql,
			b.ID, b.Title, b.Author, b.Description, b.CoverImage,
			b.BackCoverImage, b.Category, b.AverageRating, b.TotalReviews,
			b.CreatedAt,
		); err != nil {
			return err
		}
	}
	return nil
}

func restoreReviews(ctx context.Context, tx pgx.Tx, reviews []review.Review) error {
	const sql = `
		INSERT INTO reviews (id, book_id, user_name, user_avatar, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`

	for _, rv := range reviews {
		if _, err := tx.Exec(ctx, sql,
			rv.ID, rv.BookID, rv.UserName, rv.UserAvatar,
			rv.Rating, rv.Comment, rv.CreatedAt,
		); err != nil {
			return err
		}
	}
	return nil
}

// Command seed imports real book metadata from Open Library into the books
// table. Safe to re-run: titles already present are skipped.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"kitapkesif/internal/catalog"
	"kitapkesif/internal/platform/openlibrary"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

var searchQueries = []string{
	// Fiction
	"fantasy fiction",
	"mystery thriller",
	"science fiction",
	"romance novel",
	"historical fiction",

	// Non-fiction
	"biography",
	"history",
	"philosophy",
	"psychology",
	"business",

	// Science & tech
	"computer science",
	"physics",
	"biology",
	"technology",

	// Arts & culture
	"art history",
	"music",
	"photography",
	"poetry",

	// Self-improvement
	"self help",
	"motivation",
	"productivity",

	// Popular topics
	"adventure",
	"drama",
	"classic literature",
}

func main() {
	var (
		perQuery = flag.Int("per-query", 20, "Books to fetch per search query")
		delay    = flag.Duration("delay", time.Second, "Pause between Open Library requests")
	)
	flag.Parse()

	_ = godotenv.Load(".env.local")

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is required to seed the database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	seen, err := existingTitles(ctx, pool)
	if err != nil {
		log.Fatalf("Failed to read existing titles: %v", err)
	}
	log.Printf("Found %d existing books", len(seen))

	client := openlibrary.NewClient("kitapkesif-seed/1.0", 2, 2)

	const insertSQL = `
		INSERT INTO books (title, author, description, cover_image, back_cover_image, category, average_rating, total_reviews)
		VALUES ($1, $2, $3, $4, $5, $6, 0, 0)`

	inserted := 0
	for i, query := range searchQueries {
		if i > 0 {
			time.Sleep(*delay)
		}

		docs, err := client.Search(ctx, query, *perQuery)
		if err != nil {
			log.Printf("Search %q failed, skipping: %v", query, err)
			continue
		}

		for _, doc := range docs {
			book, ok := catalog.FromDoc(doc, 0)
			if !ok || seen[book.Title] {
				continue
			}
			seen[book.Title] = true

			_, err := pool.Exec(ctx, insertSQL,
				book.Title, book.Author, book.Description,
				book.CoverImage, book.BackCoverImage, book.Category,
			)
			if err != nil {
				log.Printf("Failed to insert %q: %v", book.Title, err)
				continue
			}
			inserted++
		}
		log.Printf("Processed query %q (%d/%d), %d books inserted so far", query, i+1, len(searchQueries), inserted)
	}

	log.Printf("Done. Inserted %d new books", inserted)
}

func existingTitles(ctx context.Context, pool *pgxpool.Pool) (map[string]bool, error) {
	rows, err := pool.Query(ctx, `SELECT title FROM books`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]bool)
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		seen[title] = true
	}
	return seen, rows.Err()
}

package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"kitapkesif/internal/catalog"
	"kitapkesif/internal/config"
	"kitapkesif/internal/httpx"
	"kitapkesif/internal/platform/openlibrary"
	"kitapkesif/internal/review"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.Load()

	storeState := cfg.StoreState()
	var dbPool *pgxpool.Pool
	if storeState == config.StoreConfigured {
		dbPool = mustOpenDB(cfg.DatabaseDSN)
		defer dbPool.Close()
	} else {
		for _, issue := range cfg.Issues {
			log.Printf("store config: %s", issue)
		}
		log.Println("primary store not configured, serving catalog from Open Library fallback only")
	}

	olClient := openlibrary.NewClient(cfg.OpenLibraryUserAgent, 2, 2)

	var catalogRepo catalog.Repository
	var reviewRepo review.Repository
	if dbPool != nil {
		catalogRepo = catalog.NewPostgresRepo(dbPool)
		reviewRepo = review.NewPostgresRepo(dbPool)
	}

	catalogService := catalog.NewService(catalogRepo, storeState, olClient, catalog.Options{
		CacheTTL:      cfg.CacheTTL,
		SeedQueries:   cfg.SeedQueries,
		BooksPerQuery: cfg.BooksPerQuery,
		SeedDelay:     cfg.SeedDelay,
	})
	reviewService := review.NewService(reviewRepo, storeState)

	catalogHandler := catalog.NewHTTPHandler(catalogService)
	reviewHandler := review.NewHTTPHandler(reviewService)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if dbPool == nil {
			// Fallback-only mode is a valid steady state.
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready (fallback mode)"))
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := dbPool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /books", catalogHandler.List)
	router.HandleFunc("GET /categories", catalogHandler.Categories)
	router.HandleFunc("GET /books/{id}/reviews", reviewHandler.ListByBook)
	router.HandleFunc("POST /books/{id}/reviews", reviewHandler.Create)

	rateLimit := httpx.NewClientRateLimit(10, 20)
	var handler http.Handler = router
	handler = rateLimit.Middleware(handler)
	handler = httpx.RequestSizeLimitMiddleware(1 << 20)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.CORSMiddleware(cfg.AllowedOrigins)(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func mustOpenDB(dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot create db pool: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		// Keep the pool: catalog reads degrade to fallback on query errors,
		// and the store may come back without a restart.
		log.Printf("warning: cannot ping database yet: %v", err)
	} else {
		log.Println("database connection OK")
	}
	return pool
}

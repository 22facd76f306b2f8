package catalog

import (
	"context"
	"log"
	"time"

	"kitapkesif/internal/config"
)

// Options tunes the fallback fetch and caching behavior.
type Options struct {
	CacheTTL      time.Duration
	SeedQueries   []string
	BooksPerQuery int
	// SeedDelay is the pause between seed-term requests, respecting the
	// remote service's usage policy. Zero disables the pause (tests).
	SeedDelay time.Duration
	// Now is injected by tests to control cache expiry; nil means time.Now.
	Now func() time.Time
}

// Service produces the unified, deduplicated book list. A Primary Store
// failure degrades to fallback-only; total failure of both sources yields an
// empty list, never an error the caller has to branch on.
type Service struct {
	store  Repository
	state  config.StoreState
	remote RemoteSource

	cache         *ListCache
	fallbackCache *ListCache

	seedQueries   []string
	booksPerQuery int
	seedDelay     time.Duration
}

func NewService(store Repository, state config.StoreState, remote RemoteSource, opts Options) *Service {
	if opts.CacheTTL == 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if len(opts.SeedQueries) == 0 {
		opts.SeedQueries = config.DefaultSeedQueries
	}
	if opts.BooksPerQuery == 0 {
		opts.BooksPerQuery = 20
	}
	return &Service{
		store:         store,
		state:         state,
		remote:        remote,
		cache:         NewListCache(opts.CacheTTL, opts.Now),
		fallbackCache: NewListCache(opts.CacheTTL, opts.Now),
		seedQueries:   opts.SeedQueries,
		booksPerQuery: opts.BooksPerQuery,
		seedDelay:     opts.SeedDelay,
	}
}

// FetchCatalog returns everything the user should be able to browse. The
// returned error is non-nil only when the context is canceled.
func (s *Service) FetchCatalog(ctx context.Context) ([]Book, error) {
	if books, ok := s.cache.Get(); ok {
		return books, nil
	}

	var primary []Book
	if s.state == config.StoreConfigured {
		books, err := s.store.ListByRating(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("catalog: primary store read failed, degrading to fallback: %v", err)
		} else {
			primary = books
		}
	}

	merged := primary
	if len(primary) == 0 {
		fallback, err := s.fallbackBooks(ctx)
		if err != nil {
			return nil, err
		}
		merged = MergeBooks(primary, fallback)
	}

	s.cache.Put(merged)
	return merged, nil
}

// fallbackBooks assembles the fallback-only list from the seed terms,
// deduplicating titles across terms. Per-term failures are skipped.
func (s *Service) fallbackBooks(ctx context.Context) ([]Book, error) {
	if books, ok := s.fallbackCache.Get(); ok {
		return books, nil
	}

	var out []Book
	seen := make(map[string]bool)

	for i, query := range s.seedQueries {
		if i > 0 && s.seedDelay > 0 {
			select {
			case <-time.After(s.seedDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		docs, err := s.remote.Search(ctx, query, s.booksPerQuery)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("catalog: fallback search %q failed, skipping: %v", query, err)
			continue
		}

		for _, doc := range docs {
			book, ok := FromDoc(doc, len(out)+1)
			if !ok || seen[book.Title] {
				continue
			}
			seen[book.Title] = true
			out = append(out, book)
		}
	}

	s.fallbackCache.Put(out)
	return out, nil
}

// MergeBooks appends fallback entries to the primary list, excluding any
// fallback entry whose title exactly matches a primary title. Title is the
// sole, deliberately coarse deduplication key.
func MergeBooks(primary, fallback []Book) []Book {
	titles := make(map[string]bool, len(primary))
	for _, b := range primary {
		titles[b.Title] = true
	}

	out := make([]Book, 0, len(primary)+len(fallback))
	out = append(out, primary...)
	for _, b := range fallback {
		if !titles[b.Title] {
			out = append(out, b)
		}
	}
	return out
}

// InvalidateCache clears both slots. Run after any out-of-band batch
// mutation of the store (import, restore).
func (s *Service) InvalidateCache() {
	s.cache.Invalidate()
	s.fallbackCache.Invalidate()
}

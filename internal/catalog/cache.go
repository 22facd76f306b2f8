package catalog

import (
	"sync"
	"time"
)

// ListCache is a single-slot, time-expiring cache for one book list. It holds
// whole lists, not keyed entries; a miss just triggers a recompute upstream.
type ListCache struct {
	mu        sync.Mutex
	books     []Book
	fetchedAt time.Time
	populated bool

	ttl time.Duration
	now func() time.Time
}

// NewListCache creates a cache with the given TTL. The now func is injectable
// so tests can control time; pass nil for time.Now.
func NewListCache(ttl time.Duration, now func() time.Time) *ListCache {
	if now == nil {
		now = time.Now
	}
	return &ListCache{ttl: ttl, now: now}
}

// Get returns the cached list and true while the slot is fresh.
func (c *ListCache) Get() ([]Book, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.populated || c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.books, true
}

// Put stores the list with the current time, replacing any prior contents.
func (c *ListCache) Put(books []Book) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.books = books
	c.fetchedAt = c.now()
	c.populated = true
}

// Invalidate clears the slot unconditionally. Callers that mutate the
// underlying store out-of-band must invalidate so stale data is not served.
func (c *ListCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.books = nil
	c.populated = false
}

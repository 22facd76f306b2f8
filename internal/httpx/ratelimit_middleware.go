package httpx

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientRateLimit throttles requests per client address.
type ClientRateLimit struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	maxIdle  time.Duration
}

func NewClientRateLimit(rps float64, burst int) *ClientRateLimit {
	return &ClientRateLimit{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(rps),
		burst:    burst,
		maxIdle:  5 * time.Minute,
	}
}

func (cl *ClientRateLimit) allow(key string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := time.Now()
	v, ok := cl.visitors[key]
	if !ok {
		// Prune idle entries while we hold the lock anyway.
		for k, old := range cl.visitors {
			if now.Sub(old.lastSeen) > cl.maxIdle {
				delete(cl.visitors, k)
			}
		}
		v = &visitor{limiter: rate.NewLimiter(cl.rate, cl.burst)}
		cl.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.Allow()
}

func (cl *ClientRateLimit) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.RemoteAddr
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			key = forwarded
		}

		if !cl.allow(key) {
			JSONError(w, r, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Too many requests", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

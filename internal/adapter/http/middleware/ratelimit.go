package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/iho/flowtrack/internal/usecase"
)

// RateLimiter enforces per-client limits against a shared store so
// limits hold across server instances. When the store is unavailable
// it falls back to local token buckets instead of failing requests.
type RateLimiter struct {
	store  usecase.RateLimitStore
	limit  int
	window time.Duration

	local map[string]*rate.Limiter
	mu    sync.RWMutex
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(store usecase.RateLimitStore, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		store:  store,
		limit:  limit,
		window: window,
		local:  make(map[string]*rate.Limiter),
	}
}

// Limit is a middleware that enforces rate limiting per client IP.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := getIP(r)

		allowed, err := false, error(nil)
		if rl.store != nil {
			allowed, err = rl.store.Allow(r.Context(), ip, rl.limit, rl.window)
		}
		if rl.store == nil || err != nil {
			allowed = rl.allowLocal(ip)
		}

		if !allowed {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allowLocal consults the per-IP token bucket for this process.
func (rl *RateLimiter) allowLocal(ip string) bool {
	rl.mu.RLock()
	limiter, exists := rl.local[ip]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		limiter, exists = rl.local[ip]
		if !exists {
			perSecond := float64(rl.limit) / rl.window.Seconds()
			limiter = rate.NewLimiter(rate.Limit(perSecond), rl.limit)
			rl.local[ip] = limiter
		}
		rl.mu.Unlock()
	}

	return limiter.Allow()
}

// getIP returns the rate-limit key for the request. Proxy headers are
// resolved into RemoteAddr by chi's RealIP middleware earlier in the
// chain; client-supplied headers are never read directly here, or a
// caller could rotate X-Forwarded-For values to dodge the limit.
func getIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// CleanupLimiters drops the local buckets so the map does not grow
// unbounded. Call periodically from a background goroutine.
func (rl *RateLimiter) CleanupLimiters() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.local = make(map[string]*rate.Limiter)
}

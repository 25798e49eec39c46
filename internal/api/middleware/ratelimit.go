package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimiter is a single token bucket shared by every inbound request.
type RateLimiter struct {
	limiter  *rate.Limiter
	onReject func()
}

// NewRateLimiter allows requestsPerMinute with the given burst. A
// non-positive rate disables limiting.
func NewRateLimiter(requestsPerMinute int, burst int, onReject func()) *RateLimiter {
	limit := rate.Inf
	if requestsPerMinute > 0 {
		limit = rate.Limit(requestsPerMinute) / 60
	}
	if burst <= 0 {
		burst = 1
	}
	if onReject == nil {
		onReject = func() {}
	}

	return &RateLimiter{
		limiter:  rate.NewLimiter(limit, burst),
		onReject: onReject,
	}
}

func (rl *RateLimiter) Allow() bool {
	return rl.limiter.Allow()
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow() {
			rl.onReject()
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Rate limit exceeded"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

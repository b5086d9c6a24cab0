package middleware

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter *rate.Limiter
	last    time.Time
}

// RateLimit applies a token-bucket limiter keyed by the authenticated user.
// It must run inside the Auth middleware; requests without a user id share
// one anonymous bucket. Idle buckets are dropped after ten minutes.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	var (
		mu      sync.Mutex
		buckets = map[string]*limiterEntry{}
	)

	gcTicker := time.NewTicker(5 * time.Minute)
	go func() {
		for range gcTicker.C {
			mu.Lock()
			for k, v := range buckets {
				if time.Since(v.last) > 10*time.Minute {
					delete(buckets, k)
				}
			}
			mu.Unlock()
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := GetUserID(r.Context()).String()

			mu.Lock()
			le, ok := buckets[key]
			if !ok {
				le = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
				buckets[key] = le
			}
			le.last = time.Now()
			allow := le.limiter.Allow()
			mu.Unlock()

			if !allow {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"success": false,
					"error": map[string]any{
						"code":    "rate_limited",
						"message": "too many requests",
						"details": map[string]any{"retry_after_seconds": 1},
					},
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
)

// SubmissionLimiter is implemented by the redis-backed sliding window.
type SubmissionLimiter interface {
	CheckSubmissionRateLimit(ctx context.Context, clientKey string) (bool, int, int, error)
}

// RateLimit throttles form submissions per client address. Reads pass
// through untouched; only mutating methods hit the limiter.
func RateLimit(limiter SubmissionLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			next.ServeHTTP(w, r)

			return
		}

		clientKey, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			clientKey = r.RemoteAddr
		}

		allowed, _, retryAfter, err := limiter.CheckSubmissionRateLimit(r.Context(), clientKey)
		if err != nil {
			// The limiter failing must not take the catalog down with it.
			LoggerFromContext(r.Context()).Error("Rate limiter check failed", "error", err.Error())
			next.ServeHTTP(w, r)

			return
		}

		if !allowed {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			http.Error(w, "Too many submissions, slow down.", http.StatusTooManyRequests)

			return
		}

		next.ServeHTTP(w, r)
	})
}

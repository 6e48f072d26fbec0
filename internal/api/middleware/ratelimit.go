package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/phrazzld/prompting-api/internal/api/shared"
)

// RateLimit returns middleware that bounds the number of requests the server
// accepts per minute across all clients. A perMinute of 0 disables limiting.
// Rejected requests receive a 429 in the standard response envelope.
func RateLimit(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	limiter := rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				shared.RespondWithError(w, r, http.StatusTooManyRequests,
					"RATE_LIMIT_EXCEEDED", "Too many requests, please slow down", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

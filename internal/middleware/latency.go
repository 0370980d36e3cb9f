package middleware

import (
	"math/rand/v2"
	"net/http"
	"time"
)

// Latency delays every request by base plus up to jitter, simulating a
// slower gateway. A request whose context ends first is answered with 503.
func Latency(base, jitter time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if base <= 0 && jitter <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			delay := base
			if jitter > 0 {
				delay += rand.N(jitter)
			}

			timer := time.NewTimer(delay)
			defer timer.Stop()

			select {
			case <-timer.C:
				next.ServeHTTP(w, r)
			case <-r.Context().Done():
				http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			}
		})
	}
}

package middleware

import (
	"encoding/json"
	"net/http"
)

// DefaultMaxBodySize bounds request bodies of the fake gateway.
const DefaultMaxBodySize = 1 << 20

// MaxBodySize rejects requests that declare a body larger than maxBytes
// with 413 and caps the rest with http.MaxBytesReader.
func MaxBodySize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.ContentLength > maxBytes {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"detail": http.StatusText(http.StatusRequestEntityTooLarge),
				})
				return
			}

			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

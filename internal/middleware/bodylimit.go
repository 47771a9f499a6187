package middleware

import "net/http"

// MaxBodySize caps the readable request body at limit bytes.
// Oversized bodies surface as decode errors in the handlers, which report
// them as 400 validation failures.
func MaxBodySize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

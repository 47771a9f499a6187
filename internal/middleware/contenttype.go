package middleware

import (
	"mime"
	"net/http"
)

// jsonMediaType is the only media type accepted for request bodies.
const jsonMediaType = "application/json"

// RequireJSON enforces the JSON content-type gate on body-carrying requests.
// POST, PUT and PATCH always expect a body; other methods are checked only
// when one is actually present. A missing or mismatched declaration yields
// 415 before the body is read, regardless of whether it would decode.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !expectsBody(r) {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != jsonMediaType {
			writeUnsupportedMediaType(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// expectsBody reports whether the request should carry a JSON body.
// ContentLength is -1 for chunked bodies; only 0 means no body at all.
func expectsBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return r.ContentLength != 0
}

// writeUnsupportedMediaType writes a 415 response.
func writeUnsupportedMediaType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnsupportedMediaType)
	_, _ = w.Write([]byte(`{"error":"Content-Type must be application/json","code":"UNSUPPORTED_MEDIA_TYPE"}`))
}

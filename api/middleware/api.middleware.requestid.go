package middleware

import (
	"context"
	"net/http"

	nuts "github.com/vaudience/go-nuts"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestID assigns every request an ID, echoes it in X-Request-ID and
// stores it in the request context for error payloads and logs. An ID
// supplied by the caller is kept.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = nuts.NID("req", 12)
		}
		w.Header().Set("X-Request-ID", id)

		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the request ID from ctx, generating one if the
// middleware did not run (direct handler invocation in tests).
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		return id
	}
	return nuts.NID("req", 12)
}

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/factorial-service/internal/platform/httpclient"
)

const (
	headerRequestID = "X-Request-ID"

	// maxIncomingIDLen caps IDs accepted from callers.
	maxIncomingIDLen = 128
)

type requestIDKey struct{}

// WithRequestID stores id in ctx, both for this package and for outbound
// calls made through httpclient.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request ID, or "" if none is stored.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestID reuses a well-formed incoming X-Request-ID or assigns a new
// UUID v4, then echoes it in the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if !validIncomingID(id) {
				id = uuid.NewString()
			}
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// validIncomingID accepts non-empty printable ASCII up to maxIncomingIDLen,
// keeping caller-controlled values safe to log and forward.
func validIncomingID(id string) bool {
	if id == "" || len(id) > maxIncomingIDLen {
		return false
	}
	for i := range len(id) {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

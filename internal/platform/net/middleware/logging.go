package middleware

import (
	"net/http"

	"fieldnotes/internal/platform/logger"
	pnet "fieldnotes/internal/platform/net"
)

// ContextLogger copies the chi request id onto the logger context so that
// logger.C(ctx) emits request_id. Mount after RequestID
func ContextLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if reqID := pnet.RequestID(ctx); reqID != "" {
				ctx = logger.WithRequest(ctx, reqID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

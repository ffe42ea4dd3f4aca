package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/frahmantamala/lead-tracker/pkg/logger"
)

const TraceIDHeader = "X-Trace-ID"

// RequestID tags the request logger with the caller's trace id, or a new one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "traceID", traceID)
		w.Header().Set(TraceIDHeader, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

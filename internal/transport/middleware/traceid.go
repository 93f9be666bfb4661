package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/docmanpro/docman/pkg/logger"
)

// traceHeader carries the correlation id between services. A gateway that
// already assigned one wins; otherwise we mint a fresh uuid.
const traceHeader = "X-Trace-ID"

// TraceID tags the request context logger with a correlation id and echoes
// it on the response so clients can quote it in bug reports.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(traceHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(traceHeader, id)

		ctx := logger.With(r.Context(), "trace_id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

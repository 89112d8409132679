package http

import (
	"net/http"

	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID puts a request logger tagged with trace_id into the context.
// A caller-supplied X-Trace-ID is reused; otherwise one is generated. The id
// is always echoed back.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(traceIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(traceIDHeader, id)

		ctx := h.logger.WithTraceID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package http

import (
	"io"
	"net/http"
)

// getServerVersion answers GET /api/version with the bare version string.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context()))
}

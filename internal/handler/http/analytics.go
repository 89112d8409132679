package http

import (
	"net/http"

	"github.com/MKhiriev/jobwise/internal/utils"
)

// getAnalytics serves the dashboard aggregate. An empty period means the last
// 30 days.
func (h *Handler) getAnalytics(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	analytics, err := h.services.AnalyticsService.GetAnalytics(r.Context(), userID, r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, analytics, http.StatusOK)
}

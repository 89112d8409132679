package http

import (
	"net/http"

	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/utils"
	"github.com/MKhiriev/jobwise/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var filter models.JobFilter
	if status := r.URL.Query().Get("status"); status != "" {
		s := models.JobStatus(status)
		filter.Status = &s
	}

	jobs, err := h.services.JobService.ListJobs(r.Context(), userID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if jobs == nil {
		jobs = []models.JobApplication{}
	}

	utils.WriteJSON(w, jobs, http.StatusOK)
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var job models.JobApplication
	if err = decodeJSON(r, &job); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.JobService.CreateJob(r.Context(), userID, job)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("job_id", created.ID).Msg("job application created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	job, err := h.services.JobService.GetJob(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, job, http.StatusOK)
}

func (h *Handler) updateJob(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.JobApplicationUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	job, err := h.services.JobService.UpdateJob(r.Context(), userID, chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, job, http.StatusOK)
}

func (h *Handler) deleteJob(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	jobID := chi.URLParam(r, "id")
	if err = h.services.JobService.DeleteJob(r.Context(), userID, jobID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("job_id", jobID).Msg("job application deleted")
	w.WriteHeader(http.StatusNoContent)
}

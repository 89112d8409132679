package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/jobwise/internal/app"
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/service"
	"github.com/MKhiriev/jobwise/internal/utils"
	"github.com/MKhiriev/jobwise/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Signup(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", resp.User.ID).Msg("user signed up")
	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", resp.User.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) securityQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.services.AuthService.GetSecurityQuestion(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SecurityQuestionResponse{SecurityQuestion: question}, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgPasswordReset, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.GetProfile(r.Context(), userID)
	if err != nil {
		// the token outlived its user
		if errors.Is(err, service.ErrUserNotFound) {
			utils.WriteMessage(w, app.MsgUserNotFound, http.StatusNotFound)
			return
		}
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{User: user}, http.StatusOK)
}

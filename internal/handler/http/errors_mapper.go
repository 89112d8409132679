package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/jobwise/internal/app"
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/service"
	"github.com/MKhiriev/jobwise/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusTable is checked in order; the first matching sentinel wins.
// A zero message means the error text itself is safe to return.
var errorStatusTable = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, ""}},
	{ErrInvalidRequestBody, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrDuplicateUser, errorResponse{http.StatusBadRequest, app.MsgUserAlreadyExists}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusBadRequest, app.MsgInvalidCredentials}},
	{service.ErrUserNotFound, errorResponse{http.StatusBadRequest, app.MsgUserNotFound}},
	{service.ErrIncorrectAnswer, errorResponse{http.StatusBadRequest, app.MsgIncorrectAnswer}},
	{service.ErrInvalidPeriod, errorResponse{http.StatusBadRequest, app.MsgInvalidPeriod}},
	{service.ErrInvalidStatus, errorResponse{http.StatusBadRequest, app.MsgInvalidStatus}},
	{service.ErrJobNotFound, errorResponse{http.StatusNotFound, app.MsgJobNotFound}},
	{service.ErrUnauthenticated, errorResponse{http.StatusUnauthorized, app.MsgUnauthenticated}},
	{ErrNoUserIDInContext, errorResponse{http.StatusUnauthorized, app.MsgUnauthenticated}},
}

func responseFromError(err error) errorResponse {
	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			resp := entry.errorResponse
			if resp.message == "" {
				resp.message = err.Error()
			}
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and answers with its mapped status and message.
// Server errors are logged at error level and never leak their details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", resp.status).Send()
	}

	utils.WriteMessage(w, resp.message, resp.status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgNotFound, http.StatusNotFound)
}

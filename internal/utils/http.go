package utils

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/jobwise/models"
)

// WriteJSON encodes data as the response body with the given status. The body
// is marshalled before any header is written, so a marshalling failure still
// produces a clean 500.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(body)
}

// WriteMessage writes {"message": message}, the body of every error response
// and of plain acknowledgements.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}

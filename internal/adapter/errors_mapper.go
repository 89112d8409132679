package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/jobwise/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	msg := responseMessage(resp)

	switch {
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServerError, msg)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpected, code, msg)
	}
}

// responseMessage extracts the "message" field of a JSON error body, falling
// back to the raw body and then to the status text.
func responseMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var m models.MessageResponse
	if err := json.Unmarshal([]byte(body), &m); err == nil && m.Message != "" {
		return m.Message
	}
	if body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/jobwise/internal/service"
)

// ErrUserQuit is returned when the user leaves the login screen.
var ErrUserQuit = errors.New("user quit")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, service.ErrDuplicateUser):
		return "An account with this email already exists"
	case errors.Is(err, service.ErrUserNotFound):
		return "No account with this email"
	case errors.Is(err, service.ErrIncorrectAnswer):
		return "Incorrect security answer"
	case errors.Is(err, service.ErrUnauthenticated):
		return "Session expired, please log in again"
	}

	s := strings.ToLower(err.Error())
	if errors.Is(err, service.ErrServerUnavailable) ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}

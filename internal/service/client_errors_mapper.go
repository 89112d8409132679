// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/jobwise/internal/adapter"
	"github.com/MKhiriev/jobwise/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case strings.HasPrefix(msg, app.MsgUserAlreadyExists):
			return ErrDuplicateUser
		case strings.HasPrefix(msg, app.MsgInvalidCredentials):
			return ErrInvalidCredentials
		case strings.HasPrefix(msg, app.MsgUserNotFound):
			return ErrUserNotFound
		case strings.HasPrefix(msg, app.MsgIncorrectAnswer):
			return ErrIncorrectAnswer
		case strings.HasPrefix(msg, app.MsgInvalidPeriod):
			return ErrInvalidPeriod
		case strings.HasPrefix(msg, app.MsgInvalidDataProvided):
			return fmt.Errorf("%w: %s", ErrInvalidDataProvided, strings.TrimPrefix(strings.TrimPrefix(msg, app.MsgInvalidDataProvided), ": "))
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrUnauthenticated

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgUserNotFound:
			return ErrUserNotFound
		case app.MsgJobNotFound:
			return ErrJobNotFound
		}

	case errors.Is(err, adapter.ErrServerError):
		return fmt.Errorf("%w: %s", ErrServerUnavailable, msg)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/jobwise/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	wrap := func(base error, msg string) error { return fmt.Errorf("%w: %s", base, msg) }
	transport := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"duplicate", wrap(adapter.ErrBadRequest, "user with this email already exists"), ErrDuplicateUser},
		{"credentials", wrap(adapter.ErrBadRequest, "invalid email or password"), ErrInvalidCredentials},
		{"unknown user on recovery", wrap(adapter.ErrBadRequest, "user not found"), ErrUserNotFound},
		{"wrong answer", wrap(adapter.ErrBadRequest, "incorrect security answer"), ErrIncorrectAnswer},
		{"period", wrap(adapter.ErrBadRequest, "invalid period"), ErrInvalidPeriod},
		{"validation detail", wrap(adapter.ErrBadRequest, "invalid data provided: company is required"), ErrInvalidDataProvided},
		{"unauthorized", wrap(adapter.ErrUnauthorized, "authentication required"), ErrUnauthenticated},
		{"profile gone", wrap(adapter.ErrNotFound, "user not found"), ErrUserNotFound},
		{"server", wrap(adapter.ErrServerError, "internal server error"), ErrServerUnavailable},
		{"transport passes through", transport, transport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapAdapterError(tt.in), tt.want)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
}

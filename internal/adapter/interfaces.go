// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the jobwise server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation built on resty ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/jobwise/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the jobwise
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Signup creates an account. On success the returned token is stored via
	// SetToken.
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)

	// Login authenticates with email and password. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Profile returns the account behind the current token. It fails with
	// [ErrUnauthorized] when the token is no longer accepted.
	Profile(ctx context.Context) (models.User, error)

	// SecurityQuestion returns the recovery question of the account.
	SecurityQuestion(ctx context.Context, email string) (string, error)

	// ResetPassword sets a new password after answering the security question.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	// Analytics fetches the dashboard aggregates of the current user.
	Analytics(ctx context.Context, period models.Period) (models.Analytics, error)
}

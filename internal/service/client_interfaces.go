package service

import (
	"context"

	"github.com/MKhiriev/jobwise/models"
)

// ClientAuthService defines the terminal client's account operations. A
// successful Signup or Login persists the session locally so the next start
// can skip the login screen.
type ClientAuthService interface {
	// Signup creates an account on the server and saves the session.
	Signup(ctx context.Context, req models.SignupRequest) (models.UserProfile, error)

	// Login authenticates against the server and saves the session.
	Login(ctx context.Context, req models.LoginRequest) (models.UserProfile, error)

	// RestoreSession re-uses the saved token if the server still accepts it.
	// Returns ErrNoSession when nothing is saved and ErrUnauthenticated when
	// the saved token was rejected; in the latter case the session is
	// removed.
	RestoreSession(ctx context.Context) (models.UserProfile, error)

	// Logout forgets the token and removes the saved session.
	Logout(ctx context.Context) error

	// SecurityQuestion fetches the recovery question for email.
	SecurityQuestion(ctx context.Context, email string) (string, error)

	// ResetPassword sets a new password using the security answer.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
}

// ClientAnalyticsService loads dashboard data for the logged-in user.
type ClientAnalyticsService interface {
	// Load fetches the analytics of the period and recomputes the insights
	// locally from the summary and distribution.
	Load(ctx context.Context, period models.Period) (models.Analytics, error)
}

package service

import (
	"context"

	"github.com/MKhiriev/jobwise/models"
)

// AuthService owns accounts and session tokens.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	GetSecurityQuestion(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// JobService manages the job applications of one user at a time. Every
// method is scoped by userID; applications of other users are reported as
// [ErrJobNotFound].
type JobService interface {
	CreateJob(ctx context.Context, userID int64, job models.JobApplication) (models.JobApplication, error)
	ListJobs(ctx context.Context, userID int64, filter models.JobFilter) ([]models.JobApplication, error)
	GetJob(ctx context.Context, userID int64, jobID string) (models.JobApplication, error)
	UpdateJob(ctx context.Context, userID int64, jobID string, update models.JobApplicationUpdate) (models.JobApplication, error)
	DeleteJob(ctx context.Context, userID int64, jobID string) error
}

// AnalyticsService computes the dashboard aggregates.
type AnalyticsService interface {
	// GetAnalytics accepts the raw period query value; an empty value selects
	// the last 30 days.
	GetAnalytics(ctx context.Context, userID int64, period string) (models.Analytics, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

package store

import (
	"context"

	"github.com/MKhiriev/jobwise/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Hash fields are opaque here; the
// repository never sees plaintext secrets.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
}

// JobRepository persists job applications. Every method is scoped by owner.
type JobRepository interface {
	CreateJob(ctx context.Context, job models.JobApplication) error
	ListJobs(ctx context.Context, userID int64, filter models.JobFilter) ([]models.JobApplication, error)
	GetJob(ctx context.Context, userID int64, jobID string) (models.JobApplication, error)
	UpdateJob(ctx context.Context, job models.JobApplication) error
	DeleteJob(ctx context.Context, userID int64, jobID string) error
}

// AnalyticsRepository runs the aggregate queries behind the analytics
// summary.
type AnalyticsRepository interface {
	CountByStatus(ctx context.Context, query models.AnalyticsQuery) (map[models.JobStatus]int64, error)
	AverageResponseDays(ctx context.Context, query models.AnalyticsQuery) (float64, error)
	CountByDay(ctx context.Context, query models.AnalyticsQuery) ([]models.TimePoint, error)
	CountByRole(ctx context.Context, query models.AnalyticsQuery) ([]models.RoleCount, error)
	// ReadSnapshot runs fn inside a read-only transaction. Queries made with
	// the ctx passed to fn all see the same snapshot of the data.
	ReadSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

// AnalyticsCache stores computed analytics per user and period.
type AnalyticsCache interface {
	// Get returns [ErrCacheMiss] when nothing is stored.
	Get(ctx context.Context, userID int64, period models.Period) (models.Analytics, error)
	Set(ctx context.Context, userID int64, period models.Period, analytics models.Analytics) error
	// Invalidate drops every cached period of the user.
	Invalidate(ctx context.Context, userID int64) error
}

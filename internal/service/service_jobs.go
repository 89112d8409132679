package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/store"
	"github.com/MKhiriev/jobwise/internal/validators"
	"github.com/MKhiriev/jobwise/models"
)

// IDGenerator issues identifiers for new job applications.
type IDGenerator interface {
	Generate() string
}

type jobService struct {
	jobRepository store.JobRepository
	cache         store.AnalyticsCache
	validator     validators.Validator
	ids           IDGenerator

	now    func() time.Time
	logger *logger.Logger
}

// NewJobService constructs a JobService. Every successful mutation drops the
// owner's cached analytics.
func NewJobService(jobRepository store.JobRepository, cache store.AnalyticsCache, validator validators.Validator, ids IDGenerator, logger *logger.Logger) JobService {
	return &jobService{
		jobRepository: jobRepository,
		cache:         cache,
		validator:     validator,
		ids:           ids,
		now:           func() time.Time { return time.Now().UTC() },
		logger:        logger,
	}
}

// CreateJob assigns a new id to job and stores it for userID. The status
// defaults to Applied and the application date to now.
func (s *jobService) CreateJob(ctx context.Context, userID int64, job models.JobApplication) (models.JobApplication, error) {
	log := logger.FromContext(ctx)

	now := s.now()

	job.ID = s.ids.Generate()
	job.UserID = userID
	if job.Status == "" {
		job.Status = models.StatusApplied
	}
	if job.AppliedAt.IsZero() {
		job.AppliedAt = now
	}
	job.CreatedAt = now
	job.UpdatedAt = now

	if err := s.validator.Validate(ctx, job); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("invalid job application")
		return models.JobApplication{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.jobRepository.CreateJob(ctx, job); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("job application creation failed")
		return models.JobApplication{}, fmt.Errorf("job application creation failed: %w", err)
	}

	s.invalidate(ctx, userID)
	return job, nil
}

// ListJobs returns the user's applications, newest first.
func (s *jobService) ListJobs(ctx context.Context, userID int64, filter models.JobFilter) ([]models.JobApplication, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	jobs, err := s.jobRepository.ListJobs(ctx, userID, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("job applications listing failed")
		return nil, fmt.Errorf("job applications listing failed: %w", err)
	}

	return jobs, nil
}

// GetJob returns one application of the user.
func (s *jobService) GetJob(ctx context.Context, userID int64, jobID string) (models.JobApplication, error) {
	if jobID == "" {
		return models.JobApplication{}, ErrJobNotFound
	}

	job, err := s.jobRepository.GetJob(ctx, userID, jobID)
	if errors.Is(err, store.ErrJobNotFound) {
		return models.JobApplication{}, ErrJobNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Str("job_id", jobID).Msg("job application lookup failed")
		return models.JobApplication{}, fmt.Errorf("job application lookup failed: %w", err)
	}

	return job, nil
}

// UpdateJob applies the non-nil fields of update and revalidates the result.
func (s *jobService) UpdateJob(ctx context.Context, userID int64, jobID string, update models.JobApplicationUpdate) (models.JobApplication, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.JobApplication{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	current, err := s.GetJob(ctx, userID, jobID)
	if err != nil {
		return models.JobApplication{}, err
	}

	updated := update.Apply(current)
	updated.UpdatedAt = s.now()

	if err = s.validator.Validate(ctx, updated); err != nil {
		return models.JobApplication{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	err = s.jobRepository.UpdateJob(ctx, updated)
	if errors.Is(err, store.ErrJobNotFound) {
		return models.JobApplication{}, ErrJobNotFound
	}
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("job_id", jobID).Msg("job application update failed")
		return models.JobApplication{}, fmt.Errorf("job application update failed: %w", err)
	}

	s.invalidate(ctx, userID)
	return updated, nil
}

// DeleteJob removes one application of the user.
func (s *jobService) DeleteJob(ctx context.Context, userID int64, jobID string) error {
	if jobID == "" {
		return ErrJobNotFound
	}

	err := s.jobRepository.DeleteJob(ctx, userID, jobID)
	if errors.Is(err, store.ErrJobNotFound) {
		return ErrJobNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Str("job_id", jobID).Msg("job application deletion failed")
		return fmt.Errorf("job application deletion failed: %w", err)
	}

	s.invalidate(ctx, userID)
	return nil
}

// invalidate drops cached analytics. Failures are logged only.
func (s *jobService) invalidate(ctx context.Context, userID int64) {
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("analytics cache invalidation failed")
	}
}

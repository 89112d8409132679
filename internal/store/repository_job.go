package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/models"
	"github.com/jackc/pgerrcode"
)

// jobRepository is the PostgreSQL-backed implementation of [JobRepository].
// Queries are built with squirrel and always filtered by owner, so a row of
// another user behaves exactly like a missing one.
type jobRepository struct {
	*DB
	logger *logger.Logger
}

// NewJobRepository constructs a [JobRepository] backed by db.
func NewJobRepository(db *DB, logger *logger.Logger) JobRepository {
	return &jobRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateJob inserts a fully populated application. The id and timestamps are
// assigned by the caller.
func (j *jobRepository) CreateJob(ctx context.Context, job models.JobApplication) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertJobQuery(job)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.CreateJob").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := j.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "jobRepository.CreateJob").
			Int64("user_id", job.UserID).
			Msg("failed to insert job application")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		log.Error().Str("func", "jobRepository.CreateJob").Msg("job application was not saved")
		return ErrJobNotSaved
	}

	return nil
}

// ListJobs returns the user's applications, newest application date first,
// optionally narrowed to one status. Returns an empty slice when nothing
// matches.
func (j *jobRepository) ListJobs(ctx context.Context, userID int64, filter models.JobFilter) ([]models.JobApplication, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListJobsQuery(userID, filter)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.ListJobs").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "jobRepository.ListJobs").
			Int64("user_id", userID).
			Msg("failed to execute query for listing job applications")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	jobs := make([]models.JobApplication, 0, 16)
	for rows.Next() {
		job, scanErr := scanJob(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "jobRepository.ListJobs").
				Int64("user_id", userID).
				Msg("failed to scan job application row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		jobs = append(jobs, job)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "jobRepository.ListJobs").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return jobs, nil
}

// GetJob returns one application of the user or [ErrJobNotFound].
func (j *jobRepository) GetJob(ctx context.Context, userID int64, jobID string) (models.JobApplication, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetJobQuery(userID, jobID)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.GetJob").Msg("failed to create query")
		return models.JobApplication{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	job, err := scanJob(j.DB.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows), isMalformedID(err):
		return models.JobApplication{}, ErrJobNotFound
	case err != nil:
		log.Err(err).
			Str("func", "jobRepository.GetJob").
			Int64("user_id", userID).
			Str("job_id", jobID).
			Msg("failed to get job application")
		return models.JobApplication{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return job, nil
}

// UpdateJob overwrites the mutable fields of an existing application.
// Returns [ErrJobNotFound] when no row of the owner has that id.
func (j *jobRepository) UpdateJob(ctx context.Context, job models.JobApplication) error {
	query, args, err := buildUpdateJobQuery(job)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return j.execAffectingOne(ctx, "jobRepository.UpdateJob", query, args)
}

// DeleteJob removes an application. Returns [ErrJobNotFound] when no row of
// the owner has that id.
func (j *jobRepository) DeleteJob(ctx context.Context, userID int64, jobID string) error {
	query, args, err := buildDeleteJobQuery(userID, jobID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return j.execAffectingOne(ctx, "jobRepository.DeleteJob", query, args)
}

func (j *jobRepository) execAffectingOne(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := j.DB.ExecContext(ctx, query, args...)
	if isMalformedID(err) {
		return ErrJobNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// isMalformedID reports whether Postgres rejected the job id as not a uuid.
// No row can have such an id, so callers treat it as not found.
func isMalformedID(err error) bool {
	return postgresError(err) == pgerrcode.InvalidTextRepresentation
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (models.JobApplication, error) {
	var (
		job         models.JobApplication
		respondedAt sql.NullTime
	)

	err := row.Scan(
		&job.ID,
		&job.UserID,
		&job.Company,
		&job.Role,
		&job.Status,
		&job.Location,
		&job.Notes,
		&job.AppliedAt,
		&respondedAt,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return models.JobApplication{}, err
	}

	if respondedAt.Valid {
		job.RespondedAt = &respondedAt.Time
	}

	return job, nil
}

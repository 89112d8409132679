package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/models"
)

// sessionRepository is the SQLite-backed [SessionRepository].
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	query, args, err := buildSaveSessionQuery(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sessionRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	query, args, err := buildGetSessionQuery()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(
		&session.Token,
		&session.User.ID,
		&session.User.Name,
		&session.User.Email,
		&session.CreatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Session{}, ErrSessionNotFound
	case err != nil:
		s.logger.Err(err).Str("func", "sessionRepository.GetSession").Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

func (s *sessionRepository) DeleteSession(ctx context.Context) error {
	query, args, err := buildDeleteSessionQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sessionRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

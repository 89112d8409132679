package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/jobwise/internal/config"
	"github.com/MKhiriev/jobwise/internal/logger"
)

// Storages groups the server-side repositories and the analytics cache.
type Storages struct {
	UserRepository      UserRepository
	JobRepository       JobRepository
	AnalyticsRepository AnalyticsRepository
	AnalyticsCache      AnalyticsCache

	closers []io.Closer
}

// NewStorages connects to Postgres, applies migrations and, when a Redis
// address is configured, connects the analytics cache. Without one the cache
// is a no-op.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &Storages{
		UserRepository:      NewUserRepository(db, log),
		JobRepository:       NewJobRepository(db, log),
		AnalyticsRepository: NewAnalyticsRepository(db, log),
		AnalyticsCache:      NewNoopAnalyticsCache(),
		closers:             []io.Closer{db},
	}

	if cfg.Cache.Address == "" {
		log.Warn().Msg("redis address is not set, analytics cache disabled")
		return storages, nil
	}

	cache, client, err := NewRedisAnalyticsCache(ctx, cfg.Cache, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("redis connection error: %w", err)
	}
	storages.AnalyticsCache = cache
	storages.closers = append(storages.closers, client)

	return storages, nil
}

// Close releases every underlying connection.
func (s *Storages) Close() error {
	var errs error
	for _, c := range s.closers {
		errs = errors.Join(errs, c.Close())
	}
	return errs
}

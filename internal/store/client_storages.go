package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/jobwise/internal/config"
	"github.com/MKhiriev/jobwise/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// SessionRepository holds the saved login of the terminal client.
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens the SQLite file at cfg.DBPath, creating it if it does not exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the repositories to the connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, logger),
		db:                db,
	}, nil
}

// Close closes the SQLite connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}

package store

import (
	"context"

	"github.com/MKhiriev/jobwise/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository keeps the terminal client's single saved session.
type SessionRepository interface {
	// SaveSession replaces any previously saved session.
	SaveSession(ctx context.Context, session models.Session) error
	// GetSession returns [ErrSessionNotFound] when nothing is saved.
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}

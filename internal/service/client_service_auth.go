package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/jobwise/internal/adapter"
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/store"
	"github.com/MKhiriev/jobwise/models"
)

type clientAuthService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter

	now    func() time.Time
	logger *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  serverAdapter,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.UserProfile, error) {
	resp, err := a.adapter.Signup(ctx, req)
	if err != nil {
		return models.UserProfile{}, mapAdapterError(err)
	}

	return a.saveSession(ctx, resp)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.UserProfile, error) {
	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.UserProfile{}, mapAdapterError(err)
	}

	return a.saveSession(ctx, resp)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.UserProfile, error) {
	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.UserProfile{}, ErrNoSession
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("load session: %w", err)
	}

	a.adapter.SetToken(session.Token)

	user, err := a.adapter.Profile(ctx)
	if err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, ErrUnauthenticated) {
			a.logger.Info().Msg("saved session was rejected by the server")
			if logoutErr := a.Logout(ctx); logoutErr != nil {
				a.logger.Err(logoutErr).Msg("failed to drop rejected session")
			}
		}
		return models.UserProfile{}, err
	}

	return user.Profile(), nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (a *clientAuthService) SecurityQuestion(ctx context.Context, email string) (string, error) {
	question, err := a.adapter.SecurityQuestion(ctx, email)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return question, nil
}

func (a *clientAuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return mapAdapterError(a.adapter.ResetPassword(ctx, req))
}

func (a *clientAuthService) saveSession(ctx context.Context, resp models.AuthResponse) (models.UserProfile, error) {
	err := a.sessions.SaveSession(ctx, models.Session{
		Token:     resp.Token,
		User:      resp.User,
		CreatedAt: a.now(),
	})
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("save session: %w", err)
	}

	return resp.User, nil
}

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/jobwise/internal/config"
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/service"
	"github.com/MKhiriev/jobwise/internal/tui"
	"github.com/MKhiriev/jobwise/models"
)

// App alternates between the login screen and the dashboard.
type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errAppDependencies
	}
	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run restores the saved session or asks the user to log in, then shows the
// dashboard. Logging out returns to the login screen. Quitting from either
// screen ends Run with a nil error.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		user, err := a.authenticate(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		a.logger.Info().Int64("user_id", user.ID).Msg("dashboard opened")
		logout, err := a.ui.Dashboard(ctx, user, a.workers.RefreshInterval)
		if err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			a.logger.Err(err).Msg("logout failed")
		}
	}
}

func (a *App) authenticate(ctx context.Context) (models.UserProfile, error) {
	user, err := a.services.AuthService.RestoreSession(ctx)
	if err == nil {
		return user, nil
	}

	notice := ""
	switch {
	case errors.Is(err, service.ErrNoSession):
	case errors.Is(err, service.ErrUnauthenticated):
		notice = "Your session has expired. Please log in again."
	default:
		a.logger.Warn().Err(err).Msg("saved session could not be restored")
		notice = "Could not reach the server to restore your session."
	}

	return a.ui.LoginFlow(ctx, notice)
}

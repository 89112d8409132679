package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/service"
	"github.com/MKhiriev/jobwise/internal/workers"
	"github.com/MKhiriev/jobwise/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoServices = errors.New("tui requires client services")

// TUI runs the terminal screens of the client.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow shows the authentication screen until the user logs in, signs up
// or quits. notice is an optional line shown above the form.
func (t *TUI) LoginFlow(ctx context.Context, notice string) (models.UserProfile, error) {
	model := newLoginModel(ctx, t.services.AuthService, t.buildInfo, notice)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.UserProfile{}, err
	}

	result, ok := finalModel.(*loginModel)
	if !ok {
		return models.UserProfile{}, tea.ErrProgramKilled
	}
	if result.quit || result.user == nil {
		return models.UserProfile{}, ErrUserQuit
	}
	return *result.user, nil
}

// Dashboard shows the analytics dashboard for user and reloads it every
// refreshInterval. It reports whether the user logged out (or the session
// expired) rather than quitting.
func (t *TUI) Dashboard(ctx context.Context, user models.UserProfile, refreshInterval time.Duration) (logout bool, err error) {
	model := newDashboardModel(ctx, t.services.AnalyticsService, user)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	refresher := workers.NewTicker("analytics-refresh", refreshInterval, func(context.Context) {
		program.Send(refreshTickMsg{})
	}, t.logger)
	go workers.NewWorkers(refresher).Run(workerCtx)

	finalModel, err := program.Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.sessionExpired {
		t.logger.Info().Msg("session expired while on the dashboard")
	}
	return result.logout, nil
}

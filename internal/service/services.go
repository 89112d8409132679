package service

import (
	"fmt"

	"github.com/MKhiriev/jobwise/internal/config"
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/store"
	"github.com/MKhiriev/jobwise/internal/utils"
	"github.com/MKhiriev/jobwise/internal/validators"
)

// Services bundles the server-side business services.
type Services struct {
	AuthService      AuthService
	JobService       JobService
	AnalyticsService AnalyticsService
	AppInfoService   AppInfoService
}

// NewServices wires every service to its storages.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, validators.NewAuthValidator(), cfg.App, logger),
		JobService: NewJobService(storages.JobRepository, storages.AnalyticsCache,
			validators.NewJobValidator(), utils.NewUUIDGenerator(), logger),
		AnalyticsService: NewAnalyticsService(storages.AnalyticsRepository, storages.AnalyticsCache, logger),
		AppInfoService:   appInfo,
	}, nil
}

package service

import (
	"context"

	"github.com/MKhiriev/jobwise/internal/config"
	"github.com/MKhiriev/jobwise/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService needs cfg.Version set, either from the environment or
// from the build stamp.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	logger.Debug().Str("version", cfg.Version).Msg("serving app version")

	return appInfoService{version: cfg.Version}, nil
}

func (s appInfoService) GetAppVersion(context.Context) string {
	return s.version
}

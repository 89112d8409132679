package service

import (
	"context"

	"github.com/MKhiriev/jobwise/internal/adapter"
	"github.com/MKhiriev/jobwise/internal/insight"
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/models"
)

type clientAnalyticsService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAnalyticsService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAnalyticsService {
	return &clientAnalyticsService{adapter: serverAdapter, logger: logger}
}

func (s *clientAnalyticsService) Load(ctx context.Context, period models.Period) (models.Analytics, error) {
	analytics, err := s.adapter.Analytics(ctx, period)
	if err != nil {
		return models.Analytics{}, mapAdapterError(err)
	}

	analytics.Insights = insight.Generate(analytics.Summary, analytics.StatusDistribution)

	s.logger.Debug().
		Str("period", string(period)).
		Int64("total", analytics.Summary.TotalApplications).
		Int("insights", len(analytics.Insights)).
		Msg("analytics loaded")

	return analytics, nil
}

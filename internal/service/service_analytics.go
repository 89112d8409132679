package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/MKhiriev/jobwise/internal/insight"
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/store"
	"github.com/MKhiriev/jobwise/models"
)

// StatusColors maps every job status to its chart color.
var StatusColors = map[models.JobStatus]string{
	models.StatusApplied:   "#A3A3CC",
	models.StatusInterview: "#5C5C99",
	models.StatusOffer:     "#292966",
	models.StatusRejected:  "#E57373",
}

type analyticsService struct {
	analyticsRepository store.AnalyticsRepository
	cache               store.AnalyticsCache

	now    func() time.Time
	logger *logger.Logger
}

// NewAnalyticsService constructs an AnalyticsService reading aggregates from
// analyticsRepository and memoising results in cache.
func NewAnalyticsService(analyticsRepository store.AnalyticsRepository, cache store.AnalyticsCache, logger *logger.Logger) AnalyticsService {
	return &analyticsService{
		analyticsRepository: analyticsRepository,
		cache:               cache,
		now:                 func() time.Time { return time.Now().UTC() },
		logger:              logger,
	}
}

// GetAnalytics returns the dashboard aggregates of userID over the period.
//
// A cached result is returned as is. Otherwise the aggregates are queried,
// the summary and insights derived from them, and the result cached. Cache
// failures never fail the request.
func (s *analyticsService) GetAnalytics(ctx context.Context, userID int64, rawPeriod string) (models.Analytics, error) {
	log := logger.FromContext(ctx)

	period, ok := models.ParsePeriod(rawPeriod)
	if !ok {
		return models.Analytics{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, rawPeriod)
	}

	cached, err := s.cache.Get(ctx, userID, period)
	if err == nil {
		log.Debug().Int64("user_id", userID).Str("period", string(period)).Msg("analytics served from cache")
		return cached, nil
	}
	if !errors.Is(err, store.ErrCacheMiss) {
		log.Warn().Err(err).Int64("user_id", userID).Msg("analytics cache read failed")
	}

	analytics, err := s.compute(ctx, models.AnalyticsQuery{UserID: userID, Since: period.Since(s.now())})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("period", string(period)).Msg("analytics aggregation failed")
		return models.Analytics{}, fmt.Errorf("analytics aggregation failed: %w", err)
	}
	analytics.Period = period

	if err = s.cache.Set(ctx, userID, period, analytics); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("analytics cache write failed")
	}

	return analytics, nil
}

func (s *analyticsService) compute(ctx context.Context, query models.AnalyticsQuery) (models.Analytics, error) {
	var (
		counts   map[models.JobStatus]int64
		avgDays  float64
		timeData []models.TimePoint
		roleData []models.RoleCount
	)

	err := s.analyticsRepository.ReadSnapshot(ctx, func(ctx context.Context) error {
		var err error
		if counts, err = s.analyticsRepository.CountByStatus(ctx, query); err != nil {
			return fmt.Errorf("count by status: %w", err)
		}
		if avgDays, err = s.analyticsRepository.AverageResponseDays(ctx, query); err != nil {
			return fmt.Errorf("average response days: %w", err)
		}
		if timeData, err = s.analyticsRepository.CountByDay(ctx, query); err != nil {
			return fmt.Errorf("count by day: %w", err)
		}
		if roleData, err = s.analyticsRepository.CountByRole(ctx, query); err != nil {
			return fmt.Errorf("count by role: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Analytics{}, err
	}

	if timeData == nil {
		timeData = []models.TimePoint{}
	}
	if roleData == nil {
		roleData = []models.RoleCount{}
	}

	summary := Summarize(counts, avgDays)
	distribution := Distribution(counts)

	return models.Analytics{
		Summary:            summary,
		StatusDistribution: distribution,
		TimeData:           timeData,
		RoleData:           roleData,
		Insights:           insight.Generate(summary, distribution),
	}, nil
}

// Summarize derives the headline metrics from per-status counts and the mean
// response time in days.
func Summarize(counts map[models.JobStatus]int64, avgResponseDays float64) models.AnalyticsSummary {
	var total int64
	for _, c := range counts {
		total += c
	}

	offers := counts[models.StatusOffer]
	interviewed := counts[models.StatusInterview] + offers

	return models.AnalyticsSummary{
		TotalApplications: total,
		InterviewRate:     percent(interviewed, total),
		OfferRate:         percent(offers, interviewed),
		AvgResponseTime:   int64(math.Max(avgResponseDays, 0)),
	}
}

// Distribution lists every status in display order, zero counts included.
func Distribution(counts map[models.JobStatus]int64) []models.StatusCount {
	distribution := make([]models.StatusCount, 0, len(models.JobStatuses))
	for _, status := range models.JobStatuses {
		distribution = append(distribution, models.StatusCount{
			Name:  string(status),
			Value: counts[status],
			Color: StatusColors[status],
		})
	}
	return distribution
}

// percent returns part/whole as a percentage rounded to one decimal, or 0
// when whole is 0.
func percent(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)*1000/float64(whole)) / 10
}

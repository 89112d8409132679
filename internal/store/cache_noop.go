package store

import (
	"context"

	"github.com/MKhiriev/jobwise/models"
)

// noopAnalyticsCache is used when no Redis address is configured. Every Get
// misses.
type noopAnalyticsCache struct{}

// NewNoopAnalyticsCache returns a cache that stores nothing.
func NewNoopAnalyticsCache() AnalyticsCache {
	return noopAnalyticsCache{}
}

func (noopAnalyticsCache) Get(context.Context, int64, models.Period) (models.Analytics, error) {
	return models.Analytics{}, ErrCacheMiss
}

func (noopAnalyticsCache) Set(context.Context, int64, models.Period, models.Analytics) error {
	return nil
}

func (noopAnalyticsCache) Invalidate(context.Context, int64) error {
	return nil
}

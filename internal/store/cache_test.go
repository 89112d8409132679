package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/jobwise/internal/config"
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configClientStorage(path string) config.ClientStorage {
	return config.ClientStorage{DBPath: path}
}

func TestAnalyticsCacheKey(t *testing.T) {
	assert.Equal(t, "analytics:42:last90days", analyticsCacheKey(42, models.PeriodLast90Days))
	assert.NotEqual(t, analyticsCacheKey(1, models.PeriodAllTime), analyticsCacheKey(2, models.PeriodAllTime))
}

func TestNoopAnalyticsCache(t *testing.T) {
	cache := NewNoopAnalyticsCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 1, models.PeriodAllTime, models.Analytics{Period: models.PeriodAllTime}))

	_, err := cache.Get(ctx, 1, models.PeriodAllTime)
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, cache.Invalidate(ctx, 1))
}

// unreachableRedis points at a closed port so every command fails fast.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisAnalyticsCache_ErrorsAreNotMisses(t *testing.T) {
	cache := newRedisAnalyticsCache(unreachableRedis(t), time.Minute, logger.Nop())
	ctx := context.Background()

	_, err := cache.Get(ctx, 1, models.PeriodLast30Days)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)

	assert.Error(t, cache.Set(ctx, 1, models.PeriodLast30Days, models.Analytics{}))
	assert.Error(t, cache.Invalidate(ctx, 1))
}

func TestNewRedisAnalyticsCache_PingFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, _, err := NewRedisAnalyticsCache(ctx, config.Cache{Address: "127.0.0.1:1", TTL: time.Minute}, logger.Nop())
	assert.Error(t, err)
}

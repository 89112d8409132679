package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/jobwise/internal/config"
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/models"
	"github.com/redis/go-redis/v9"
)

// redisAnalyticsCache keeps serialized [models.Analytics] in Redis under one
// key per user and period.
type redisAnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisAnalyticsCache connects to Redis and verifies the connection with a
// PING. The caller owns the returned client and must close it.
func NewRedisAnalyticsCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (AnalyticsCache, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		log.Err(err).Str("func", "NewRedisAnalyticsCache").Msg("failed to connect to Redis")
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Info().Str("func", "NewRedisAnalyticsCache").Msg("connected to Redis successfully")

	return newRedisAnalyticsCache(client, cfg.TTL, log), client, nil
}

func newRedisAnalyticsCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *redisAnalyticsCache {
	return &redisAnalyticsCache{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

func analyticsCacheKey(userID int64, period models.Period) string {
	return fmt.Sprintf("analytics:%d:%s", userID, period)
}

func (c *redisAnalyticsCache) Get(ctx context.Context, userID int64, period models.Period) (models.Analytics, error) {
	val, err := c.client.Get(ctx, analyticsCacheKey(userID, period)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Analytics{}, ErrCacheMiss
	}
	if err != nil {
		return models.Analytics{}, fmt.Errorf("error reading analytics cache: %w", err)
	}

	var analytics models.Analytics
	if err = json.Unmarshal(val, &analytics); err != nil {
		return models.Analytics{}, fmt.Errorf("error decoding cached analytics: %w", err)
	}

	return analytics, nil
}

func (c *redisAnalyticsCache) Set(ctx context.Context, userID int64, period models.Period, analytics models.Analytics) error {
	data, err := json.Marshal(analytics)
	if err != nil {
		return fmt.Errorf("error encoding analytics: %w", err)
	}

	if err = c.client.Set(ctx, analyticsCacheKey(userID, period), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("error writing analytics cache: %w", err)
	}

	return nil
}

func (c *redisAnalyticsCache) Invalidate(ctx context.Context, userID int64) error {
	keys := make([]string, 0, len(models.Periods))
	for _, period := range models.Periods {
		keys = append(keys, analyticsCacheKey(userID, period))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("error invalidating analytics cache: %w", err)
	}

	return nil
}

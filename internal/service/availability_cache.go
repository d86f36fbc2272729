package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for cached availability responses
	availabilityKeyPrefix = "availability:"

	// Computed availability goes stale as soon as a booking lands, so the
	// TTL is short and mutations invalidate eagerly.
	availabilityCacheTTL = 60 * time.Second

	// Timeout for individual Redis operations
	cacheOpTimeout = 5 * time.Second
)

// AvailabilityCache caches computed day-availability payloads in Redis.
// Cache failures are soft: callers fall back to recomputing, so every
// method degrades to a miss/no-op on Redis errors.
type AvailabilityCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewAvailabilityCache(redisClient *redis.Client, log *logrus.Logger) *AvailabilityCache {
	return &AvailabilityCache{
		redisClient: redisClient,
		log:         log,
	}
}

// Key builds the cache key for a professional and a YYYY-MM-DD date.
func (c *AvailabilityCache) Key(professionalID uuid.UUID, date string) string {
	return fmt.Sprintf("%s%s:%s", availabilityKeyPrefix, professionalID.String(), date)
}

// Get loads a cached payload into dest. Returns false on miss or error.
func (c *AvailabilityCache) Get(ctx context.Context, professionalID uuid.UUID, date string, dest interface{}) bool {
	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, c.Key(professionalID, date)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read availability cache: %+v", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warnf("Failed to decode availability cache entry: %+v", err)
		return false
	}
	return true
}

// Set stores a payload under the professional/date key with a short TTL.
func (c *AvailabilityCache) Set(ctx context.Context, professionalID uuid.UUID, date string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Failed to encode availability cache entry: %+v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	if err := c.redisClient.Set(ctx, c.Key(professionalID, date), raw, availabilityCacheTTL).Err(); err != nil {
		c.log.Warnf("Failed to write availability cache: %+v", err)
	}
}

// Invalidate drops the cached payload for one professional/date.
func (c *AvailabilityCache) Invalidate(ctx context.Context, professionalID uuid.UUID, date string) {
	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	if err := c.redisClient.Del(ctx, c.Key(professionalID, date)).Err(); err != nil {
		c.log.Warnf("Failed to invalidate availability cache: %+v", err)
	}
}

// InvalidateAll drops every cached date for a professional. Used when the
// schedule text itself changes.
func (c *AvailabilityCache) InvalidateAll(ctx context.Context, professionalID uuid.UUID) {
	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	pattern := fmt.Sprintf("%s%s:*", availabilityKeyPrefix, professionalID.String())
	keys, err := c.redisClient.Keys(ctx, pattern).Result()
	if err != nil {
		c.log.Warnf("Failed to list availability cache keys: %+v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		c.log.Warnf("Failed to invalidate availability cache keys: %+v", err)
	}
}

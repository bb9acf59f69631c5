package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Nishukr/Urban-waste-control/internal/domain"
)

const (
	scheduleCacheTTL    = time.Minute
	scheduleVersionKey  = "schedules:ver"
	scheduleKeyTemplate = "schedules:v%d:%s"
)

// ScheduleCache caches schedule listings keyed by area filter.
type ScheduleCache interface {
	Get(ctx context.Context, area string) ([]domain.Schedule, bool)
	Set(ctx context.Context, area string, schedules []domain.Schedule)
	Invalidate(ctx context.Context)
}

type redisScheduleCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisScheduleCache returns a Redis-backed schedule cache. Writes bump a
// version counter so stale listing keys are never read again; they expire on
// their own TTL.
func NewRedisScheduleCache(client *redis.Client, logger *zap.Logger) ScheduleCache {
	return &redisScheduleCache{client: client, logger: logger}
}

func (c *redisScheduleCache) Get(ctx context.Context, area string) ([]domain.Schedule, bool) {
	data, err := c.client.Get(ctx, c.key(ctx, area)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("schedule cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var schedules []domain.Schedule
	if err := json.Unmarshal([]byte(data), &schedules); err != nil {
		c.logger.Warn("schedule cache decode failed", zap.Error(err))
		return nil, false
	}
	return schedules, true
}

func (c *redisScheduleCache) Set(ctx context.Context, area string, schedules []domain.Schedule) {
	data, err := json.Marshal(schedules)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(ctx, area), data, scheduleCacheTTL).Err(); err != nil {
		c.logger.Warn("schedule cache write failed", zap.Error(err))
	}
}

func (c *redisScheduleCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, scheduleVersionKey).Err(); err != nil {
		c.logger.Warn("schedule cache invalidation failed", zap.Error(err))
	}
}

func (c *redisScheduleCache) key(ctx context.Context, area string) string {
	version, err := c.client.Get(ctx, scheduleVersionKey).Int64()
	if err != nil && err != redis.Nil {
		c.logger.Warn("schedule cache version read failed", zap.Error(err))
	}
	return fmt.Sprintf(scheduleKeyTemplate, version, strings.ToLower(area))
}

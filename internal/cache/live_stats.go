package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cricketiq/prediction-api/internal/logic"
	"github.com/cricketiq/prediction-api/internal/models"
)

// TTL constants
const (
	LiveStatsTTL      = 60 * time.Second
	CurrentMatchesTTL = 30 * time.Second
)

const currentMatchesKey = "matches:current"

// LiveSource is the upstream the cache fronts
type LiveSource interface {
	logic.LiveMatchDataSource
	logic.LiveMatchLister
}

// LiveStatsCache serves live match data from Redis, falling through to the
// upstream provider on a miss. Cache failures never fail a read.
type LiveStatsCache struct {
	redis    logic.RedisClient
	upstream LiveSource
	ttl      time.Duration
	logger   *zap.SugaredLogger
}

// NewLiveStatsCache creates a read-through cache in front of upstream
func NewLiveStatsCache(rdb logic.RedisClient, upstream LiveSource, ttl time.Duration, logger *zap.Logger) *LiveStatsCache {
	if ttl <= 0 {
		ttl = LiveStatsTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LiveStatsCache{
		redis:    rdb,
		upstream: upstream,
		ttl:      ttl,
		logger:   logger.Sugar(),
	}
}

func liveStatsKey(matchID string) string {
	return fmt.Sprintf("match:%s:live_stats", matchID)
}

// GetLiveStats returns cached stats for the match, fetching them on a miss
func (c *LiveStatsCache) GetLiveStats(ctx context.Context, matchID string) (*models.LiveMatchStats, error) {
	key := liveStatsKey(matchID)

	var stats models.LiveMatchStats
	if c.read(ctx, key, &stats) {
		return &stats, nil
	}

	fresh, err := c.upstream.GetLiveStats(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if fresh != nil {
		c.write(ctx, key, fresh, c.ttl)
	}
	return fresh, nil
}

// CurrentMatches returns the cached live match list, fetching it on a miss
func (c *LiveStatsCache) CurrentMatches(ctx context.Context) ([]models.LiveMatch, error) {
	var matches []models.LiveMatch
	if c.read(ctx, currentMatchesKey, &matches) {
		return matches, nil
	}

	fresh, err := c.upstream.CurrentMatches(ctx)
	if err != nil {
		return nil, err
	}
	c.write(ctx, currentMatchesKey, fresh, min(c.ttl, CurrentMatchesTTL))
	return fresh, nil
}

func (c *LiveStatsCache) read(ctx context.Context, key string, dest any) bool {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warnw("Live data cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warnw("Discarding malformed cached live data", "key", key, "error", err)
		return false
	}
	return true
}

func (c *LiveStatsCache) write(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.Warnw("Live data cache write failed", "key", key, "error", err)
	}
}

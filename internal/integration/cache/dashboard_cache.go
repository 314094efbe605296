// Package cache implements Redis-backed caches for read-heavy endpoints.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fynora/backend/internal/application/adapter"
)

const dashboardKey = "fynora:dashboard:v1"

// dashboardCache implements adapter.DashboardCache on Redis. All failures are
// treated as cache misses so the dashboard keeps working without Redis.
type dashboardCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewDashboardCache creates a new dashboard cache instance.
func NewDashboardCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) adapter.DashboardCache {
	return &dashboardCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get retrieves the cached dashboard payload.
func (c *dashboardCache) Get(ctx context.Context) ([]byte, bool) {
	if c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, dashboardKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("dashboard cache read failed", slog.String("error", err.Error()))
		}
		return nil, false
	}
	return payload, true
}

// Set stores the dashboard payload with the configured TTL.
func (c *dashboardCache) Set(ctx context.Context, payload []byte) {
	if c.client == nil {
		return
	}
	if err := c.client.Set(ctx, dashboardKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("dashboard cache write failed", slog.String("error", err.Error()))
	}
}

package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/campushub/campus-events-gateway/internal/domain"
	"github.com/campushub/campus-events-gateway/internal/persistence"
)

const snapshotKeyPrefix = "events:snapshot:"

// EventSnapshotCache keeps short-lived copies of the upstream event
// listing, keyed per audience because the API marks which events the
// caller is registered for. A nil cache is valid and always misses.
type EventSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewEventSnapshotCache builds the cache over the shared Redis handle.
func NewEventSnapshotCache(r *persistence.Redis, ttl time.Duration, logger *zap.Logger) *EventSnapshotCache {
	if r == nil || r.Client == nil {
		return nil
	}
	return &EventSnapshotCache{client: r.Client, ttl: ttl, logger: logger}
}

// Get returns the cached snapshot for the audience, if present.
func (c *EventSnapshotCache) Get(ctx context.Context, audience string) ([]domain.Event, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, snapshotKeyPrefix+audience).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("event snapshot cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var events []domain.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		c.logger.Warn("event snapshot cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return events, true
}

// Store saves the snapshot for the audience. Failures only degrade to
// uncached fetches, so they are logged and swallowed.
func (c *EventSnapshotCache) Store(ctx context.Context, audience string, events []domain.Event) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(events)
	if err != nil {
		c.logger.Warn("event snapshot encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, snapshotKeyPrefix+audience, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("event snapshot cache write failed", zap.Error(err))
	}
}

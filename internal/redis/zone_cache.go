package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"crowdWatch/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

type ZoneLister interface {
	ListZones(ctx context.Context) ([]domain.Zone, error)
}

// ZoneCache is a cache-aside ListZones over the zone store. Zones change
// rarely, so every cycle after the first within ttl skips the database.
// Cache failures fall through to the store.
type ZoneCache struct {
	client *goredis.Client
	store  ZoneLister
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

func NewZoneCache(r *Redis, store ZoneLister, ttl time.Duration, logger *slog.Logger) *ZoneCache {
	return &ZoneCache{
		client: r.Client,
		store:  store,
		key:    "zones:all",
		ttl:    ttl,
		logger: logger,
	}
}

func (c *ZoneCache) ListZones(ctx context.Context) ([]domain.Zone, error) {
	zones, hit, err := c.get(ctx)
	if err != nil {
		c.logger.Warn("zone cache read failed", slog.Any("error", err))
	}
	if hit {
		return zones, nil
	}

	zones, err = c.store.ListZones(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.set(ctx, zones); err != nil {
		c.logger.Warn("zone cache write failed", slog.Any("error", err))
	}
	return zones, nil
}

func (c *ZoneCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}

func (c *ZoneCache) get(ctx context.Context) ([]domain.Zone, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var zones []domain.Zone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, false, err
	}
	return zones, true, nil
}

func (c *ZoneCache) set(ctx context.Context, zones []domain.Zone) error {
	b, err := json.Marshal(zones)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, c.ttl).Err()
}

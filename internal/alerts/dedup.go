package alerts

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/spaolacci/murmur3"
)

const stripeCount = 64

type RecentAlerts interface {
	HasActiveSince(ctx context.Context, eventID, zoneID, alertType string, since time.Time) (bool, error)
}

// WindowClaimer holds a key for the length of a dedup window across processes.
type WindowClaimer interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// Deduplicator admits at most one active alert per (event, zone, type) per
// window. Decisions for the same key are serialized in-process through a
// striped lock; across processes the optional claimer closes the gap between
// the store read and the alert write.
type Deduplicator struct {
	store   RecentAlerts
	claimer WindowClaimer
	window  time.Duration
	logger  *slog.Logger
	stripes [stripeCount]sync.Mutex
}

func NewDeduplicator(store RecentAlerts, claimer WindowClaimer, window time.Duration, logger *slog.Logger) *Deduplicator {
	return &Deduplicator{
		store:   store,
		claimer: claimer,
		window:  window,
		logger:  logger,
	}
}

func (d *Deduplicator) Window() time.Duration { return d.window }

func Key(eventID, zoneID, alertType string) string {
	return fmt.Sprintf("%s:%s:%s", eventID, zoneID, alertType)
}

// ShouldCreate reports whether no active alert for the key was created at or
// after now - window.
func (d *Deduplicator) ShouldCreate(ctx context.Context, zoneID, eventID, alertType string, now time.Time) (bool, error) {
	exists, err := d.store.HasActiveSince(ctx, eventID, zoneID, alertType, now.Add(-d.window))
	if err != nil {
		return false, err
	}
	if exists {
		d.logger.Info("active alert already exists, skipping",
			slog.String("zone_id", zoneID),
			slog.String("event_id", eventID),
			slog.String("type", alertType),
		)
		return false, nil
	}
	return true, nil
}

// Admit runs create only when ShouldCreate allows it, holding the key's
// stripe for the whole read-then-write. The returned bool is true when
// create ran and succeeded.
func (d *Deduplicator) Admit(ctx context.Context, zoneID, eventID, alertType string, now time.Time, create func(ctx context.Context) error) (bool, error) {
	key := Key(eventID, zoneID, alertType)

	mu := &d.stripes[murmur3.Sum32([]byte(key))%stripeCount]
	mu.Lock()
	defer mu.Unlock()

	ok, err := d.ShouldCreate(ctx, zoneID, eventID, alertType, now)
	if err != nil || !ok {
		return false, err
	}

	if d.claimer != nil {
		claimed, err := d.claimer.Claim(ctx, key, d.window)
		if err != nil {
			return false, err
		}
		if !claimed {
			d.logger.Info("dedup window held by another writer, skipping", slog.String("key", key))
			return false, nil
		}
	}

	if err := create(ctx); err != nil {
		if d.claimer != nil {
			if rerr := d.claimer.Release(ctx, key); rerr != nil {
				d.logger.Error("release dedup claim failed", slog.String("key", key), slog.Any("error", rerr))
			}
		}
		return false, err
	}
	return true, nil
}

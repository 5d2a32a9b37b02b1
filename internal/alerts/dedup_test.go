package alerts

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type memAlerts struct {
	mu      sync.Mutex
	created []memAlert
}

type memAlert struct {
	key string
	at  time.Time
}

func (m *memAlerts) HasActiveSince(_ context.Context, eventID, zoneID, alertType string, since time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := Key(eventID, zoneID, alertType)
	for _, a := range m.created {
		if a.key == key && !a.at.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memAlerts) add(key string, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, memAlert{key: key, at: at})
}

type memClaims struct {
	mu       sync.Mutex
	held     map[string]bool
	released []string
}

func (c *memClaims) Claim(_ context.Context, key string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.held[key] {
		return false, nil
	}
	c.held[key] = true
	return true, nil
}

func (c *memClaims) Release(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.held, key)
	c.released = append(c.released, key)
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestDeduplicator_WindowSuppressesThenAdmits(t *testing.T) {
	t.Parallel()

	store := &memAlerts{}
	d := NewDeduplicator(store, nil, 30*time.Minute, quietLogger())
	key := Key("ev", "z1", "congestion")
	base := time.Date(2026, 6, 11, 18, 0, 0, 0, time.UTC)

	create := func(at time.Time) func(context.Context) error {
		return func(context.Context) error {
			store.add(key, at)
			return nil
		}
	}

	ok, err := d.Admit(context.Background(), "z1", "ev", "congestion", base, create(base))
	require.NoError(t, err)
	require.True(t, ok)

	later := base.Add(10 * time.Minute)
	ok, err = d.Admit(context.Background(), "z1", "ev", "congestion", later, create(later))
	require.NoError(t, err)
	require.False(t, ok)

	// other zone and other type are independent
	ok, err = d.Admit(context.Background(), "z2", "ev", "congestion", later, func(context.Context) error { return nil })
	require.NoError(t, err)
	require.True(t, ok)

	afterWindow := base.Add(31 * time.Minute)
	ok, err = d.Admit(context.Background(), "z1", "ev", "congestion", afterWindow, create(afterWindow))
	require.NoError(t, err)
	require.True(t, ok)

	require.Len(t, store.created, 2)
}

func TestDeduplicator_ConcurrentBreachesCreateOnce(t *testing.T) {
	t.Parallel()

	store := &memAlerts{}
	d := NewDeduplicator(store, nil, 30*time.Minute, quietLogger())
	now := time.Now()
	key := Key("ev", "z1", "congestion")

	var created int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = d.Admit(context.Background(), "z1", "ev", "congestion", now, func(context.Context) error {
				atomic.AddInt32(&created, 1)
				store.add(key, now)
				return nil
			})
		}()
	}
	wg.Wait()

	require.EqualValues(t, 1, created)
}

func TestDeduplicator_ClaimHeldElsewhere(t *testing.T) {
	t.Parallel()

	claims := &memClaims{held: map[string]bool{Key("ev", "z1", "congestion"): true}}
	d := NewDeduplicator(&memAlerts{}, claims, 30*time.Minute, quietLogger())

	ran := false
	ok, err := d.Admit(context.Background(), "z1", "ev", "congestion", time.Now(), func(context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	require.False(t, ok)
	require.False(t, ran)
}

func TestDeduplicator_CreateFailureReleasesClaim(t *testing.T) {
	t.Parallel()

	claims := &memClaims{held: map[string]bool{}}
	d := NewDeduplicator(&memAlerts{}, claims, 30*time.Minute, quietLogger())

	boom := errors.New("insert failed")
	ok, err := d.Admit(context.Background(), "z1", "ev", "congestion", time.Now(), func(context.Context) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.False(t, ok)
	require.Equal(t, []string{Key("ev", "z1", "congestion")}, claims.released)
	require.Empty(t, claims.held)
}

type failingStore struct{ err error }

func (f failingStore) HasActiveSince(context.Context, string, string, string, time.Time) (bool, error) {
	return false, f.err
}

func TestDeduplicator_StoreError(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	d := NewDeduplicator(failingStore{err: boom}, nil, time.Minute, quietLogger())

	ok, err := d.ShouldCreate(context.Background(), "z", "e", "congestion", time.Now())
	require.ErrorIs(t, err, boom)
	require.False(t, ok)
}

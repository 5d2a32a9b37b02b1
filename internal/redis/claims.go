package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// WindowClaims holds dedup windows across processes with SET NX. A claim
// expires on its own when the window ends.
type WindowClaims struct {
	client *goredis.Client
	prefix string
}

func NewWindowClaims(r *Redis) *WindowClaims {
	return &WindowClaims{client: r.Client, prefix: "dedup:"}
}

func (w *WindowClaims) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return w.client.SetNX(ctx, w.prefix+key, time.Now().UTC().Format(time.RFC3339Nano), ttl).Result()
}

func (w *WindowClaims) Release(ctx context.Context, key string) error {
	return w.client.Del(ctx, w.prefix+key).Err()
}

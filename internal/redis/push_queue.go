package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"crowdWatch/internal/domain"
	"crowdWatch/pkg/e"

	"github.com/redis/go-redis/v9"
)

// PushQueue is a Redis list used as a push outbox: producers LPUSH, the relay
// BRPOPs, so messages leave in the order they were queued.
type PushQueue struct {
	client *redis.Client
	key    string
}

func NewPushQueue(client *redis.Client, key string) *PushQueue {
	return &PushQueue{client: client, key: key}
}

func (q *PushQueue) Enqueue(ctx context.Context, msg domain.PushMessage) error {
	b, err := json.Marshal(queuedPush{PushMessage: msg, Critical: msg.Critical})
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *PushQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.PushMessage, error) {
	var p queuedPush

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.PushMessage{}, e.ErrQueueEmpty
		}
		return domain.PushMessage{}, err
	}
	if len(res) < 2 {
		return domain.PushMessage{}, e.ErrQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &p); err != nil {
		return domain.PushMessage{}, err
	}
	p.PushMessage.Critical = p.Critical
	return p.PushMessage, nil
}

func (q *PushQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}

// queuedPush carries the critical flag, which the wire form of PushMessage omits.
type queuedPush struct {
	domain.PushMessage
	Critical bool `json:"critical"`
}

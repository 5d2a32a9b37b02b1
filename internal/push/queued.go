package push

import (
	"context"

	"crowdWatch/internal/domain"
)

type Enqueuer interface {
	Enqueue(ctx context.Context, msg domain.PushMessage) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, token, topic string) error
}

// QueuedBroadcaster hands sends to the outbox and subscribes directly.
type QueuedBroadcaster struct {
	queue      Enqueuer
	subscriber Subscriber
}

func NewQueuedBroadcaster(queue Enqueuer, subscriber Subscriber) *QueuedBroadcaster {
	return &QueuedBroadcaster{queue: queue, subscriber: subscriber}
}

func (b *QueuedBroadcaster) Send(ctx context.Context, msg domain.PushMessage) error {
	return b.queue.Enqueue(ctx, msg)
}

func (b *QueuedBroadcaster) Subscribe(ctx context.Context, token, topic string) error {
	return b.subscriber.Subscribe(ctx, token, topic)
}

// Discard logs nothing and sends nothing; it backs PUSH_DISABLED deployments.
type Discard struct{}

func (Discard) Send(context.Context, domain.PushMessage) error { return nil }

func (Discard) Subscribe(context.Context, string, string) error { return nil }

package push

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"crowdWatch/internal/domain"
	"crowdWatch/internal/metrics"
	"crowdWatch/pkg/e"
)

type Outbox interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.PushMessage, error)
}

type Sender interface {
	Send(ctx context.Context, msg domain.PushMessage) error
}

// Relay drains the push outbox into the gateway. Each message gets exactly one
// delivery attempt; a failed one is logged and dropped.
type Relay struct {
	logger  *slog.Logger
	outbox  Outbox
	sender  Sender
	poll    time.Duration
	backoff time.Duration
}

func NewRelay(logger *slog.Logger, outbox Outbox, sender Sender) *Relay {
	return &Relay{
		logger:  logger,
		outbox:  outbox,
		sender:  sender,
		poll:    5 * time.Second,
		backoff: 500 * time.Millisecond,
	}
}

func (r *Relay) Run(ctx context.Context) {
	r.logger.Info("push relay STARTED")

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("push relay STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		msg, err := r.outbox.BRPop(ctx, r.poll)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			r.logger.Error("outbox pop failed", slog.Any("error", err))
			select {
			case <-ctx.Done():
			case <-time.After(r.backoff):
			}
			continue
		}

		r.deliver(ctx, msg)
	}
}

func (r *Relay) deliver(ctx context.Context, msg domain.PushMessage) {
	if err := r.sender.Send(ctx, msg); err != nil {
		metrics.PushOutboxTotal.WithLabelValues("failed").Inc()
		r.logger.Warn("relayed push failed",
			slog.String("topic", msg.Topic),
			slog.String("title", msg.Title),
			slog.Any("error", err),
		)
		return
	}
	metrics.PushOutboxTotal.WithLabelValues("relayed").Inc()
	r.logger.Debug("relayed push", slog.String("topic", msg.Topic))
}

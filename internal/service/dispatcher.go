package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"crowdWatch/internal/domain"
	"crowdWatch/internal/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const clickAction = "FLUTTER_NOTIFICATION_CLICK"

// Dispatcher fans one logical notification out to push topics and to
// per-user notification records. Delivery is best effort: a failed topic or
// role chunk is logged and never stops the others. Dispatching the same
// alert twice sends and records twice.
type Dispatcher struct {
	push          Broadcaster
	users         UserRepository
	notifications NotificationRepository
	logger        *slog.Logger
	concurrency   int
	maxInFilter   int
	now           func() time.Time
}

func NewDispatcher(
	push Broadcaster,
	users UserRepository,
	notifications NotificationRepository,
	logger *slog.Logger,
	concurrency int,
	maxInFilter int,
) *Dispatcher {
	if concurrency <= 0 {
		concurrency = 8
	}
	if maxInFilter <= 0 {
		maxInFilter = 30
	}
	return &Dispatcher{
		push:          push,
		users:         users,
		notifications: notifications,
		logger:        logger,
		concurrency:   concurrency,
		maxInFilter:   maxInFilter,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// BroadcastToTopics sends one push per topic concurrently. Each send is tried
// once; its outcome lands in the report at the topic's index.
func (d *Dispatcher) BroadcastToTopics(ctx context.Context, topics []string, title, body string, data map[string]string, severity string) domain.BroadcastReport {
	results := make([]domain.TopicResult, len(topics))
	critical := severity == string(domain.SeverityCritical)

	var g errgroup.Group
	g.SetLimit(d.concurrency)
	for i, topic := range topics {
		i, topic := i, topic
		g.Go(func() error {
			msg := BuildPushMessage(topic, title, body, data, critical)
			res := domain.TopicResult{Topic: topic}

			if err := d.push.Send(ctx, msg); err != nil {
				res.Err = err
				res.Error = err.Error()
				metrics.PushSendsTotal.WithLabelValues("failed").Inc()
				d.logger.Error("push send failed", slog.String("topic", topic), slog.Any("error", err))
			} else {
				metrics.PushSendsTotal.WithLabelValues("sent").Inc()
				d.logger.Info("push sent", slog.String("topic", topic), slog.String("title", title))
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	report := domain.BroadcastReport{Results: results}
	for _, r := range results {
		if r.Err != nil {
			report.Failed++
		} else {
			report.Sent++
		}
	}
	return report
}

// PersistNotificationRecords writes one record per active user whose role is
// in targetRoles. Roles are queried in chunks of maxInFilter; each chunk's
// records are committed as one batch.
func (d *Dispatcher) PersistNotificationRecords(ctx context.Context, title, body, notificationType, referenceID string, targetRoles []string) (int, error) {
	roles := uniqueStrings(targetRoles)
	if len(roles) == 0 {
		return 0, nil
	}

	var (
		written int
		errs    []error
	)
	for _, chunk := range chunkStrings(roles, d.maxInFilter) {
		users, err := d.users.ActiveUsersByRoles(ctx, chunk)
		if err != nil {
			d.logger.Error("resolve users for roles failed", slog.Any("roles", chunk), slog.Any("error", err))
			errs = append(errs, err)
			continue
		}
		if len(users) == 0 {
			continue
		}

		createdAt := d.now()
		records := make([]domain.NotificationRecord, 0, len(users))
		for _, u := range users {
			records = append(records, domain.NotificationRecord{
				ID:          uuid.New(),
				UserID:      u.ID,
				Title:       title,
				Body:        body,
				Type:        notificationType,
				ReferenceID: referenceID,
				IsRead:      false,
				CreatedAt:   createdAt,
			})
		}

		if err := d.notifications.InsertNotifications(ctx, records); err != nil {
			d.logger.Error("insert notification batch failed",
				slog.Any("roles", chunk),
				slog.Int("records", len(records)),
				slog.Any("error", err),
			)
			errs = append(errs, err)
			continue
		}
		written += len(records)
		metrics.NotificationRecordsTotal.Add(float64(len(records)))
	}

	if written > 0 {
		d.logger.Info("notification records created",
			slog.Int("count", written),
			slog.Any("roles", roles),
			slog.String("type", notificationType),
			slog.String("reference_id", referenceID),
		)
	}
	return written, errors.Join(errs...)
}

// BuildPushMessage fills the per-platform hints; critical sends escalate
// priority, channel and sound.
func BuildPushMessage(topic, title, body string, data map[string]string, critical bool) domain.PushMessage {
	payload := make(map[string]string, len(data)+1)
	for k, v := range data {
		payload[k] = v
	}
	payload["click_action"] = clickAction

	msg := domain.PushMessage{
		Topic: topic,
		Title: title,
		Body:  body,
		Data:  payload,
		Android: domain.AndroidHints{
			Priority:  "normal",
			ChannelID: "alerts",
			Sound:     "default",
		},
		APNS: domain.APNSHints{
			Sound: "default",
			Badge: 1,
		},
		Critical: critical,
	}
	if critical {
		msg.Android = domain.AndroidHints{
			Priority:  "high",
			ChannelID: "alerts_critical",
			Sound:     "alarm",
		}
		msg.APNS.Sound = "alarm.wav"
	}
	return msg
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func chunkStrings(in []string, size int) [][]string {
	var out [][]string
	for start := 0; start < len(in); start += size {
		end := start + size
		if end > len(in) {
			end = len(in)
		}
		out = append(out, in[start:end])
	}
	return out
}

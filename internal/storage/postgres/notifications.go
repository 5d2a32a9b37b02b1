package postgres

import (
	"context"
	"log/slog"

	"crowdWatch/internal/domain"
	"crowdWatch/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewNotificationRepo(pool *pgxpool.Pool, logger *slog.Logger) *NotificationRepo {
	return &NotificationRepo{pool: pool, logger: logger}
}

// InsertNotifications writes the records with a single COPY, so the batch
// lands entirely or not at all.
func (r *NotificationRepo) InsertNotifications(ctx context.Context, records []domain.NotificationRecord) error {
	const op = "postgres.Notification.InsertBatch"

	if len(records) == 0 {
		return nil
	}

	columns := []string{"id", "user_id", "title", "body", "type", "reference_id", "is_read", "created_at"}
	src := pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
		n := records[i]
		return []any{n.ID, n.UserID, n.Title, n.Body, n.Type, n.ReferenceID, n.IsRead, n.CreatedAt}, nil
	})

	if _, err := r.pool.CopyFrom(ctx, pgx.Identifier{"notifications"}, columns, src); err != nil {
		r.logger.Error("copy failed", slog.String("op", op), slog.Int("records", len(records)), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// ListForUser returns a user's newest records first.
func (r *NotificationRepo) ListForUser(ctx context.Context, userID string, limit int) ([]domain.NotificationRecord, error) {
	const op = "postgres.Notification.ListForUser"

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	const query = `
		SELECT id, user_id, title, body, type, reference_id, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	records := make([]domain.NotificationRecord, 0)
	for rows.Next() {
		var n domain.NotificationRecord
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Type, &n.ReferenceID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		records = append(records, n)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return records, nil
}

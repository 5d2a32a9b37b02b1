package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"crowdWatch/internal/domain"
	"crowdWatch/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AlertRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlertRepo(pool *pgxpool.Pool, logger *slog.Logger) *AlertRepo {
	return &AlertRepo{pool: pool, logger: logger}
}

func (r *AlertRepo) CreateAlert(ctx context.Context, a *domain.Alert) error {
	const op = "postgres.Alert.Create"

	if a == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	roles := a.TargetRoles
	if roles == nil {
		roles = []string{}
	}

	const query = `
		INSERT INTO alerts (
			id, type, message, severity, event_id, zone_id, zone_name,
			target_roles, is_active, created_by, created_by_name, created_at, expires_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.pool.Exec(ctx, query,
		a.ID,
		a.Type,
		a.Message,
		a.Severity,
		a.EventID,
		a.ZoneID,
		a.ZoneName,
		roles,
		a.IsActive,
		a.CreatedBy,
		a.CreatedByName,
		a.CreatedAt,
		a.ExpiresAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("alert_id", a.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// HasActiveSince reports whether an active alert for the key was created at
// or after since.
func (r *AlertRepo) HasActiveSince(ctx context.Context, eventID, zoneID, alertType string, since time.Time) (bool, error) {
	const op = "postgres.Alert.HasActiveSince"

	const query = `
		SELECT EXISTS (
			SELECT 1 FROM alerts
			WHERE event_id = $1
			  AND zone_id = $2
			  AND type = $3
			  AND is_active
			  AND created_at >= $4
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, eventID, zoneID, alertType, since).Scan(&exists); err != nil {
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}
	return exists, nil
}

func (r *AlertRepo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	const op = "postgres.Alert.DeactivateExpired"

	const query = `
		UPDATE alerts
		SET is_active = false
		WHERE is_active AND expires_at <= $1
	`

	cmd, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cmd.RowsAffected(), nil
}

func (r *AlertRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const op = "postgres.Alert.DeleteExpired"

	cmd, err := r.pool.Exec(ctx, `DELETE FROM alerts WHERE expires_at <= $1`, now)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cmd.RowsAffected(), nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"crowdWatch/internal/domain"
	"crowdWatch/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IncidentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIncidentRepo(pool *pgxpool.Pool, logger *slog.Logger) *IncidentRepo {
	return &IncidentRepo{pool: pool, logger: logger}
}

func (r *IncidentRepo) CreateIncident(ctx context.Context, inc *domain.Incident) error {
	const op = "postgres.Incident.Create"

	if inc == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if inc.ID == uuid.Nil {
		inc.ID = uuid.New()
	}
	if inc.CreatedAt.IsZero() {
		inc.CreatedAt = time.Now().UTC()
	}
	if inc.UpdatedAt.IsZero() {
		inc.UpdatedAt = inc.CreatedAt
	}
	if inc.Status == "" {
		inc.Status = domain.IncidentReported
	}

	const query = `
		INSERT INTO incidents (id, type, severity, description, status, event_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		inc.ID,
		inc.Type,
		inc.Severity,
		inc.Description,
		inc.Status,
		inc.EventID,
		inc.CreatedAt,
		inc.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *IncidentRepo) GetIncident(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	const op = "postgres.Incident.Get"

	const query = `
		SELECT id, type, severity, description, status, event_id, created_at, updated_at
		FROM incidents
		WHERE id = $1
	`

	var inc domain.Incident
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&inc.ID,
		&inc.Type,
		&inc.Severity,
		&inc.Description,
		&inc.Status,
		&inc.EventID,
		&inc.CreatedAt,
		&inc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return &inc, nil
}

func (r *IncidentRepo) UpdateIncidentStatus(ctx context.Context, id uuid.UUID, status domain.IncidentStatus, at time.Time) error {
	const op = "postgres.Incident.UpdateStatus"

	cmd, err := r.pool.Exec(ctx, `UPDATE incidents SET status = $2, updated_at = $3 WHERE id = $1`, id, status, at)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// ArchiveResolvedBefore moves resolved incidents last updated before cutoff
// into archived_incidents. Each batch of batchSize moves in its own
// transaction.
func (r *IncidentRepo) ArchiveResolvedBefore(ctx context.Context, cutoff time.Time, batchSize int) (int64, error) {
	const op = "postgres.Incident.ArchiveResolved"

	const query = `
		WITH moved AS (
			DELETE FROM incidents
			WHERE id IN (
				SELECT id FROM incidents
				WHERE status = 'resolved' AND updated_at < $1
				ORDER BY updated_at
				LIMIT $2
			)
			RETURNING id, type, severity, description, status, event_id, created_at, updated_at
		)
		, archived AS (
			INSERT INTO archived_incidents (id, type, severity, description, status, event_id, created_at, updated_at, archived_at)
			SELECT id, type, severity, description, status, event_id, created_at, updated_at, now()
			FROM moved
			ON CONFLICT (id) DO UPDATE
			SET type = EXCLUDED.type,
				severity = EXCLUDED.severity,
				description = EXCLUDED.description,
				status = EXCLUDED.status,
				event_id = EXCLUDED.event_id,
				created_at = EXCLUDED.created_at,
				updated_at = EXCLUDED.updated_at,
				archived_at = EXCLUDED.archived_at
			RETURNING id
		)
		SELECT count(*) FROM moved
	`

	var total int64
	for {
		var n int64
		err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
			return tx.QueryRow(ctx, query, cutoff, batchSize).Scan(&n)
		})
		if err != nil {
			r.logger.Error("archive batch failed", slog.String("op", op), slog.Any("error", err), slog.Int64("archived", total))
			return total, e.WrapError(ctx, op, err)
		}
		total += n
		if n < int64(batchSize) {
			return total, nil
		}
	}
}

package postgres

import (
	"context"
	"encoding/json"
	"log/slog"

	"crowdWatch/internal/domain"
	"crowdWatch/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ZoneRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewZoneRepo(pool *pgxpool.Pool, logger *slog.Logger) *ZoneRepo {
	return &ZoneRepo{pool: pool, logger: logger}
}

// ListZones returns zones in id order. A boundary that does not decode is
// returned empty so the zone falls back to its capacity-derived area.
func (r *ZoneRepo) ListZones(ctx context.Context) ([]domain.Zone, error) {
	const op = "postgres.Zone.List"

	const query = `
		SELECT id, name, event_id, boundary, capacity
		FROM zones
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var zones []domain.Zone
	for rows.Next() {
		var (
			z   domain.Zone
			raw []byte
		)
		if err := rows.Scan(&z.ID, &z.Name, &z.EventID, &raw, &z.Capacity); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &z.Boundary); err != nil {
				r.logger.Warn("malformed zone boundary", slog.String("zone_id", z.ID), slog.Any("error", err))
				z.Boundary = nil
			}
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return zones, nil
}

func (r *ZoneRepo) UpsertZone(ctx context.Context, z domain.Zone) error {
	const op = "postgres.Zone.Upsert"

	boundary, err := json.Marshal(z.Boundary)
	if err != nil {
		return e.Wrap(op, err)
	}

	const query = `
		INSERT INTO zones (id, name, event_id, boundary, capacity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			event_id = EXCLUDED.event_id,
			boundary = EXCLUDED.boundary,
			capacity = EXCLUDED.capacity
	`

	if _, err := r.pool.Exec(ctx, query, z.ID, z.Name, z.EventID, boundary, z.Capacity); err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("zone_id", z.ID))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

package postgres

import (
	"context"
	"log/slog"

	"crowdWatch/internal/domain"
	"crowdWatch/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReadingRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReadingRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReadingRepo {
	return &ReadingRepo{pool: pool, logger: logger}
}

const readingColumns = `zone_id, zone_name, event_id, current_population, capacity, density_value, status, last_updated`

// UpsertReadings overwrites the current reading of every zone in one
// transaction.
func (r *ReadingRepo) UpsertReadings(ctx context.Context, readings []domain.DensityReading) error {
	const op = "postgres.Reading.Upsert"

	if len(readings) == 0 {
		return nil
	}

	const query = `
		INSERT INTO density_readings (` + readingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (zone_id) DO UPDATE
		SET zone_name = EXCLUDED.zone_name,
			event_id = EXCLUDED.event_id,
			current_population = EXCLUDED.current_population,
			capacity = EXCLUDED.capacity,
			density_value = EXCLUDED.density_value,
			status = EXCLUDED.status,
			last_updated = EXCLUDED.last_updated
	`

	batch := &pgx.Batch{}
	for _, rd := range readings {
		batch.Queue(query, rd.ZoneID, rd.ZoneName, rd.EventID, rd.CurrentPopulation, rd.Capacity, rd.DensityValue, rd.Status, rd.LastUpdated)
	}

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		r.logger.Error("batch upsert failed", slog.String("op", op), slog.Int("readings", len(readings)), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *ReadingRepo) GetReading(ctx context.Context, zoneID string) (*domain.DensityReading, error) {
	const op = "postgres.Reading.Get"

	const query = `SELECT ` + readingColumns + ` FROM density_readings WHERE zone_id = $1`

	rd, err := scanReading(r.pool.QueryRow(ctx, query, zoneID))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return rd, nil
}

func (r *ReadingRepo) ListReadingsByEvent(ctx context.Context, eventID string) ([]domain.DensityReading, error) {
	const op = "postgres.Reading.ListByEvent"

	const query = `SELECT ` + readingColumns + ` FROM density_readings WHERE event_id = $1 ORDER BY zone_id`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	readings := make([]domain.DensityReading, 0)
	for rows.Next() {
		rd, err := scanReading(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		readings = append(readings, *rd)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return readings, nil
}

func scanReading(row pgx.Row) (*domain.DensityReading, error) {
	var rd domain.DensityReading
	if err := row.Scan(
		&rd.ZoneID,
		&rd.ZoneName,
		&rd.EventID,
		&rd.CurrentPopulation,
		&rd.Capacity,
		&rd.DensityValue,
		&rd.Status,
		&rd.LastUpdated,
	); err != nil {
		return nil, err
	}
	return &rd, nil
}

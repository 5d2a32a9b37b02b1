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

type SampleRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSampleRepo(pool *pgxpool.Pool, logger *slog.Logger) *SampleRepo {
	return &SampleRepo{pool: pool, logger: logger}
}

func (r *SampleRepo) InsertSample(ctx context.Context, s *domain.LocationSample) error {
	const op = "postgres.Sample.Insert"

	if s == nil || s.UserID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if s.Latitude < -90 || s.Latitude > 90 || s.Longitude < -180 || s.Longitude > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now().UTC()
	}

	const query = `
		INSERT INTO location_samples (id, user_id, latitude, longitude, ts)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := r.pool.Exec(ctx, query, s.ID, s.UserID, s.Latitude, s.Longitude, s.Timestamp); err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *SampleRepo) SamplesSince(ctx context.Context, since time.Time) ([]domain.LocationSample, error) {
	const op = "postgres.Sample.SamplesSince"

	const query = `
		SELECT id, user_id, latitude, longitude, ts
		FROM location_samples
		WHERE ts >= $1
		ORDER BY ts
	`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var samples []domain.LocationSample
	for rows.Next() {
		var s domain.LocationSample
		if err := rows.Scan(&s.ID, &s.UserID, &s.Latitude, &s.Longitude, &s.Timestamp); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return samples, nil
}

// DeleteSamplesBefore removes samples older than cutoff, batchSize rows per
// statement, until none remain. Rows deleted by earlier batches stay deleted
// if a later batch fails.
func (r *SampleRepo) DeleteSamplesBefore(ctx context.Context, cutoff time.Time, batchSize int) (int64, error) {
	const op = "postgres.Sample.DeleteBefore"

	const query = `
		DELETE FROM location_samples
		WHERE id IN (
			SELECT id FROM location_samples
			WHERE ts < $1
			LIMIT $2
		)
	`

	var total int64
	for {
		cmd, err := r.pool.Exec(ctx, query, cutoff, batchSize)
		if err != nil {
			r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.Int64("deleted", total))
			return total, e.WrapError(ctx, op, err)
		}
		n := cmd.RowsAffected()
		total += n
		if n < int64(batchSize) {
			return total, nil
		}
	}
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"crowdWatch/internal/domain"
	"crowdWatch/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewUserRepo(pool *pgxpool.Pool, logger *slog.Logger) *UserRepo {
	return &UserRepo{pool: pool, logger: logger}
}

const userColumns = `id, email, display_name, role, is_active, fcm_token`

// ActiveUsersByRoles matches roles exactly; role names are case-sensitive.
func (r *UserRepo) ActiveUsersByRoles(ctx context.Context, roles []string) ([]domain.User, error) {
	const op = "postgres.User.ActiveByRoles"

	if len(roles) == 0 {
		return nil, nil
	}

	const query = `SELECT ` + userColumns + ` FROM users WHERE is_active AND role = ANY($1) ORDER BY id`

	rows, err := r.pool.Query(ctx, query, roles)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.DisplayName, &u.Role, &u.IsActive, &u.FCMToken); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return users, nil
}

func (r *UserRepo) GetUser(ctx context.Context, id string) (*domain.User, error) {
	const op = "postgres.User.Get"

	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var u domain.User
	err := r.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.DisplayName, &u.Role, &u.IsActive, &u.FCMToken)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id))
		return nil, e.WrapError(ctx, op, err)
	}
	return &u, nil
}

func (r *UserRepo) UpsertUser(ctx context.Context, u domain.User) error {
	const op = "postgres.User.Upsert"

	const query = `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email,
			display_name = EXCLUDED.display_name,
			role = EXCLUDED.role,
			is_active = EXCLUDED.is_active,
			fcm_token = EXCLUDED.fcm_token
	`

	if _, err := r.pool.Exec(ctx, query, u.ID, u.Email, u.DisplayName, u.Role, u.IsActive, u.FCMToken); err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

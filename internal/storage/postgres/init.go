package postgres

import (
	"context"
	"fmt"

	"log/slog"

	"crowdWatch/internal/config"
	"crowdWatch/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	Pool          *pgxpool.Pool
	Samples       *SampleRepo
	Zones         *ZoneRepo
	Readings      *ReadingRepo
	Alerts        *AlertRepo
	Incidents     *IncidentRepo
	Users         *UserRepo
	Notifications *NotificationRepo
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	logger.Info("Connecting to Postgres",
		slog.String("host", cfg.Postgres.Host),
		slog.Int("port", cfg.Postgres.Port),
		slog.String("db", cfg.Postgres.Database),
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	if cfg.Postgres.MaxConns > 0 {
		poolCfg.MaxConns = cfg.Postgres.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	return New(pool, logger), nil
}

// New wires the repositories over an existing pool.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Postgres {
	return &Postgres{
		Pool:          pool,
		Samples:       NewSampleRepo(pool, logger),
		Zones:         NewZoneRepo(pool, logger),
		Readings:      NewReadingRepo(pool, logger),
		Alerts:        NewAlertRepo(pool, logger),
		Incidents:     NewIncidentRepo(pool, logger),
		Users:         NewUserRepo(pool, logger),
		Notifications: NewNotificationRepo(pool, logger),
	}
}

func (p *Postgres) Close() {
	p.Pool.Close()
}

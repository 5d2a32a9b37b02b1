package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"crowdWatch/internal/alerts"
	"crowdWatch/internal/api"
	"crowdWatch/internal/api/handlers/http/system"
	"crowdWatch/internal/config"
	"crowdWatch/internal/density"
	"crowdWatch/internal/push"
	"crowdWatch/internal/redis"
	"crowdWatch/internal/service"
	"crowdWatch/internal/storage/postgres"
	"crowdWatch/internal/workers"
	"crowdWatch/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Scheduler  *workers.Scheduler
	// Relay is nil unless PUSH_DRIVER=queue.
	Relay   *push.Relay
	Service *service.Service
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	profile, err := BuildProfile(cfg)
	if err != nil {
		return nil, fmt.Errorf("alerting profile: %w", err)
	}
	logger.Info("Alerting profile loaded",
		slog.String("basis", string(profile.Basis)),
		slog.Duration("dedup_window", profile.DedupWindow),
		slog.Duration("alert_ttl", profile.AlertTTL),
	)

	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}
	if cfg.Postgres.Migrate {
		if err := storage.EnsureSchema(ctx); err != nil {
			storage.Close()
			return nil, fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	zoneCache := redis.NewZoneCache(redisClient, storage.Zones, cfg.Redis.ZoneCacheTTL, logger)

	var claimer alerts.WindowClaimer
	if cfg.Alerting.DistributedClaims {
		claimer = redis.NewWindowClaims(redisClient)
	}

	broadcaster, relay := buildPush(cfg, redisClient, logger)

	factory := alerts.NewFactory(profile)
	dedup := alerts.NewDeduplicator(storage.Alerts, claimer, profile.DedupWindow, logger)
	evaluator := density.NewEvaluator(profile.DensityConfig())

	dispatcher := service.NewDispatcher(broadcaster, storage.Users, storage.Notifications, logger, cfg.Push.Concurrency, profile.MaxInFilter)
	alertSvc := service.NewAlertService(storage.Alerts, dispatcher, factory, dedup, logger)

	aggregator := service.NewAggregator(
		storage.Samples,
		zoneCache,
		storage.Readings,
		alertSvc,
		evaluator,
		service.AggregatorConfig{
			Lookback:    cfg.Scheduler.Lookback,
			SampleGrace: cfg.Scheduler.SampleGrace,
			BatchSize:   profile.MaxBatchWrites,
		},
		logger,
	)

	retention := service.NewRetention(storage.Samples, storage.Alerts, storage.Incidents, service.RetentionConfig{
		SampleMaxAge:   cfg.Retention.SampleMaxAge,
		IncidentMaxAge: cfg.Retention.IncidentMaxAge,
		BatchSize:      cfg.Retention.BatchSize,
	}, logger)

	srv := &service.Service{
		Samples:    service.NewSampleService(storage.Samples, storage.Readings, logger),
		Zones:      service.NewZoneService(storage.Zones, zoneCache, logger),
		Aggregator: aggregator,
		Alerts:     alertSvc,
		Incidents:  service.NewIncidentService(storage.Incidents, dispatcher, factory, logger),
		Users: service.NewUserService(storage.Users, storage.Notifications, broadcaster, profile, service.BootstrapConfig{
			Attempts:    cfg.Alerting.BootstrapAttempts,
			BaseBackoff: cfg.Alerting.BootstrapBackoff,
		}, logger),
		Retention: retention,
	}

	httpServer := api.NewServer(cfg, logger, srv, map[string]system.Pinger{
		"postgres": storage.Pool,
		"redis":    redisClient,
	})
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Scheduler:  NewScheduler(cfg, srv, logger),
		Relay:      relay,
		Service:    srv,
	}, nil
}

// BuildProfile overlays env settings on the default profile, then the
// optional YAML profile file on top.
func BuildProfile(cfg *config.Config) (alerts.Profile, error) {
	base := alerts.DefaultProfile()

	basis, err := density.ParseBasis(cfg.Alerting.Basis)
	if err != nil {
		return base, err
	}
	base.Basis = basis
	if cfg.Alerting.DedupWindow > 0 {
		base.DedupWindow = cfg.Alerting.DedupWindow
	}
	if cfg.Alerting.AlertTTL > 0 {
		base.AlertTTL = cfg.Alerting.AlertTTL
	}
	if cfg.Alerting.IncidentBodyLimit > 0 {
		base.IncidentBodyLimit = cfg.Alerting.IncidentBodyLimit
	}
	if cfg.Retention.BatchSize > 0 {
		base.MaxBatchWrites = cfg.Retention.BatchSize
	}

	return alerts.LoadProfile(cfg.Alerting.ProfileFile, base)
}

func buildPush(cfg *config.Config, r *redis.Redis, logger *slog.Logger) (service.Broadcaster, *push.Relay) {
	if cfg.Push.Disabled {
		logger.Warn("Push delivery disabled, notifications are persisted only")
		return push.Discard{}, nil
	}

	gateway := push.NewGateway(cfg.Push.GatewayURL, cfg.Push.Timeout, logger)
	if cfg.Push.Driver != config.PushDriverQueue {
		return gateway, nil
	}

	queue := redis.NewPushQueue(r.Client, cfg.Push.QueueKey)
	return push.NewQueuedBroadcaster(queue, gateway), push.NewRelay(logger, queue, gateway)
}

// NewScheduler registers the periodic jobs: the aggregation cycle, the
// expired-alert sweep and the daily retention pass.
func NewScheduler(cfg *config.Config, srv *service.Service, logger *slog.Logger) *workers.Scheduler {
	return workers.NewScheduler(logger,
		workers.Job{
			Name:    "aggregation",
			Every:   cfg.Scheduler.AggregationEvery,
			Timeout: cfg.Scheduler.AggregationEvery,
			Run: func(ctx context.Context) error {
				_, err := srv.Aggregator.RunCycle(ctx)
				return err
			},
		},
		workers.Job{
			Name:     "alert_expiry",
			Every:    cfg.Scheduler.ExpirySweepEvery,
			Timeout:  5 * time.Minute,
			RunFirst: true,
			Run: func(ctx context.Context) error {
				_, err := srv.Retention.SweepExpiredAlerts(ctx)
				return err
			},
		},
		workers.Job{
			Name:    "retention",
			Every:   cfg.Scheduler.RetentionEvery,
			Timeout: 30 * time.Minute,
			Run: func(ctx context.Context) error {
				_, err := srv.Retention.RunDaily(ctx)
				return err
			},
		},
	)
}

// RunWorkers blocks until ctx is done and every background worker returned.
func (c *Components) RunWorkers(ctx context.Context, disableScheduler bool) {
	var wg sync.WaitGroup

	if !disableScheduler {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Scheduler.Run(ctx)
		}()
	}

	if c.Relay != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Relay.Run(ctx)
		}()
	}

	wg.Wait()
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}

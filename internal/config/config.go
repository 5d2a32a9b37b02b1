package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string          `json:"env"`
	Http      HttpConfig      `json:"http"`
	Postgres  PostgresConfig  `json:"postgres"`
	Redis     RedisConfig     `json:"redis"`
	APIKey    string          `json:"api_key,omitempty"`
	Push      PushConfig      `json:"push"`
	Scheduler SchedulerConfig `json:"scheduler"`
	Alerting  AlertingConfig  `json:"alerting"`
	Retention RetentionConfig `json:"retention"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	IngestRPS       float64       `json:"ingest_rps"`
	IngestBurst     int           `json:"ingest_burst"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`
	Migrate  bool   `json:"migrate"`

	MaxConns int32
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
	// ZoneCacheTTL bounds how stale a cached zone list may be.
	ZoneCacheTTL time.Duration `json:"zone_cache_ttl"`
}

const (
	PushDriverHTTP  = "http"
	PushDriverQueue = "queue"
)

type PushConfig struct {
	// Driver is "http" for direct gateway calls or "queue" to hand sends to
	// a Redis outbox drained by the relay worker.
	Driver      string        `json:"driver"`
	GatewayURL  string        `json:"gateway_url"`
	Timeout     time.Duration `json:"timeout"`
	Concurrency int           `json:"concurrency"`
	QueueKey    string        `json:"queue_key"`
	Disabled    bool          `json:"disabled"`
}

type SchedulerConfig struct {
	AggregationEvery time.Duration `json:"aggregation_every"`
	Lookback         time.Duration `json:"lookback"`
	SampleGrace      time.Duration `json:"sample_grace"`
	ExpirySweepEvery time.Duration `json:"expiry_sweep_every"`
	RetentionEvery   time.Duration `json:"retention_every"`
	Disabled         bool          `json:"disabled"`
}

type AlertingConfig struct {
	Basis             string        `json:"basis"`
	DedupWindow       time.Duration `json:"dedup_window"`
	AlertTTL          time.Duration `json:"alert_ttl"`
	IncidentBodyLimit int           `json:"incident_body_limit"`
	// ProfileFile is an optional YAML overlay of the alerting profile.
	ProfileFile       string        `json:"profile_file"`
	BootstrapAttempts int           `json:"bootstrap_attempts"`
	BootstrapBackoff  time.Duration `json:"bootstrap_backoff"`
	DistributedClaims bool          `json:"distributed_claims"`
}

type RetentionConfig struct {
	SampleMaxAge   time.Duration `json:"sample_max_age"`
	IncidentMaxAge time.Duration `json:"incident_max_age"`
	BatchSize      int           `json:"batch_size"`
}

func Load(ctx context.Context) (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			IngestRPS:       getEnvFloat("HTTP_INGEST_RPS", 2),
			IngestBurst:     getEnvInt("HTTP_INGEST_BURST", 5),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "pg-local"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			Database: getEnv("POSTGRES_DB", "crowdwatch"),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:  getEnv("POSTGRES_SSL_MODE", "disable"),
			Migrate:  getEnvBool("POSTGRES_MIGRATE", true),
			MaxConns: int32(getEnvInt("POSTGRES_MAX_CONNS", 20)),
		},
		Redis: RedisConfig{
			Addr:         getEnv("REDIS_ADDR", "redis-local:6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvInt("REDIS_DB", 0),
			ZoneCacheTTL: getEnvDuration("REDIS_ZONE_CACHE_TTL", time.Minute),
		},
		APIKey: getEnv("API_KEY", "super-secret-key"),
		Push: PushConfig{
			Driver:      getEnv("PUSH_DRIVER", PushDriverHTTP),
			GatewayURL:  getEnv("PUSH_GATEWAY_URL", "http://push-gateway:8081"),
			Timeout:     getEnvDuration("PUSH_TIMEOUT", 5*time.Second),
			Concurrency: getEnvInt("PUSH_CONCURRENCY", 8),
			QueueKey:    getEnv("PUSH_QUEUE_KEY", "push:outbox"),
			Disabled:    getEnvBool("PUSH_DISABLED", false),
		},
		Scheduler: SchedulerConfig{
			AggregationEvery: getEnvDuration("SCHED_AGGREGATION_EVERY", time.Minute),
			Lookback:         getEnvDuration("SCHED_LOOKBACK", 30*time.Second),
			SampleGrace:      getEnvDuration("SCHED_SAMPLE_GRACE", 5*time.Minute),
			ExpirySweepEvery: getEnvDuration("SCHED_EXPIRY_SWEEP_EVERY", time.Hour),
			RetentionEvery:   getEnvDuration("SCHED_RETENTION_EVERY", 24*time.Hour),
			Disabled:         getEnvBool("SCHED_DISABLED", false),
		},
		Alerting: AlertingConfig{
			Basis:             getEnv("ALERTING_BASIS", "occupancy"),
			DedupWindow:       getEnvDuration("ALERTING_DEDUP_WINDOW", 30*time.Minute),
			AlertTTL:          getEnvDuration("ALERTING_ALERT_TTL", 2*time.Hour),
			IncidentBodyLimit: getEnvInt("ALERTING_INCIDENT_BODY_LIMIT", 120),
			ProfileFile:       getEnv("ALERTING_PROFILE_FILE", ""),
			BootstrapAttempts: getEnvInt("ALERTING_BOOTSTRAP_ATTEMPTS", 3),
			BootstrapBackoff:  getEnvDuration("ALERTING_BOOTSTRAP_BACKOFF", 2*time.Second),
			DistributedClaims: getEnvBool("ALERTING_DISTRIBUTED_CLAIMS", true),
		},
		Retention: RetentionConfig{
			SampleMaxAge:   getEnvDuration("RETENTION_SAMPLE_MAX_AGE", 30*24*time.Hour),
			IncidentMaxAge: getEnvDuration("RETENTION_INCIDENT_MAX_AGE", 30*24*time.Hour),
			BatchSize:      getEnvInt("RETENTION_BATCH_SIZE", 400),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.String("push_driver", cfg.Push.Driver),
		slog.String("alerting_basis", cfg.Alerting.Basis))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	switch c.Push.Driver {
	case PushDriverHTTP, PushDriverQueue:
	default:
		return fmt.Errorf("PUSH_DRIVER must be %q or %q", PushDriverHTTP, PushDriverQueue)
	}
	if c.Push.GatewayURL == "" && !c.Push.Disabled {
		return errors.New("PUSH_GATEWAY_URL required")
	}

	if c.Scheduler.AggregationEvery <= 0 || c.Scheduler.ExpirySweepEvery <= 0 || c.Scheduler.RetentionEvery <= 0 {
		return errors.New("scheduler periods must be positive")
	}
	if c.Scheduler.Lookback <= 0 {
		return errors.New("SCHED_LOOKBACK must be positive")
	}

	if c.Retention.BatchSize <= 0 {
		return errors.New("RETENTION_BATCH_SIZE must be positive")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

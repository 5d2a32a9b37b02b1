package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", ":9090")
	t.Setenv("PUSH_DRIVER", PushDriverQueue)
	t.Setenv("ALERTING_BASIS", "area")
	t.Setenv("ALERTING_DEDUP_WINDOW", "10m")
	t.Setenv("HTTP_INGEST_RPS", "0.5")
	t.Setenv("SCHED_DISABLED", "true")
	t.Setenv("POSTGRES_PORT", "not-a-number")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Http.Port != ":9090" || cfg.Push.Driver != PushDriverQueue || cfg.Alerting.Basis != "area" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.Alerting.DedupWindow != 10*time.Minute || cfg.Http.IngestRPS != 0.5 || !cfg.Scheduler.Disabled {
		t.Fatalf("typed env not applied: %+v", cfg)
	}
	if cfg.Postgres.Port != 5432 {
		t.Fatalf("unparsable int must keep default, got %d", cfg.Postgres.Port)
	}
	if cfg.Scheduler.AggregationEvery != time.Minute || cfg.Retention.BatchSize != 400 {
		t.Fatalf("defaults changed: %+v", cfg.Scheduler)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Http:      HttpConfig{Port: ":8080"},
			Postgres:  PostgresConfig{Host: "db"},
			Push:      PushConfig{Driver: PushDriverHTTP, GatewayURL: "http://push"},
			Scheduler: SchedulerConfig{AggregationEvery: time.Minute, Lookback: 30 * time.Second, ExpirySweepEvery: time.Hour, RetentionEvery: time.Hour},
			Retention: RetentionConfig{BatchSize: 400},
		}
	}

	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"ok", func(c *Config) {}, false},
		{"port_without_colon", func(c *Config) { c.Http.Port = "8080" }, true},
		{"unknown_driver", func(c *Config) { c.Push.Driver = "smtp" }, true},
		{"no_gateway", func(c *Config) { c.Push.GatewayURL = "" }, true},
		{"no_gateway_disabled", func(c *Config) { c.Push.GatewayURL = ""; c.Push.Disabled = true }, false},
		{"zero_period", func(c *Config) { c.Scheduler.AggregationEvery = 0 }, true},
		{"zero_batch", func(c *Config) { c.Retention.BatchSize = 0 }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			err := c.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("wantErr=%v got=%v", tc.wantErr, err)
			}
		})
	}
}

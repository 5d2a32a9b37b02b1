package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"crowdWatch/internal/metrics"
)

type RetentionConfig struct {
	SampleMaxAge   time.Duration
	IncidentMaxAge time.Duration
	BatchSize      int
}

func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		SampleMaxAge:   30 * 24 * time.Hour,
		IncidentMaxAge: 30 * 24 * time.Hour,
		BatchSize:      400,
	}
}

type RetentionReport struct {
	SamplesDeleted    int64 `json:"samples_deleted"`
	AlertsDeleted     int64 `json:"alerts_deleted"`
	IncidentsArchived int64 `json:"incidents_archived"`
}

// Retention runs housekeeping sweeps over samples, alerts and incidents.
type Retention struct {
	samples   SampleRepository
	alerts    AlertRepository
	incidents IncidentRepository
	cfg       RetentionConfig
	logger    *slog.Logger
	now       func() time.Time
}

func NewRetention(samples SampleRepository, alerts AlertRepository, incidents IncidentRepository, cfg RetentionConfig, logger *slog.Logger) *Retention {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 400
	}
	return &Retention{
		samples:   samples,
		alerts:    alerts,
		incidents: incidents,
		cfg:       cfg,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SweepExpiredAlerts clears is_active on alerts whose expiry has passed.
func (r *Retention) SweepExpiredAlerts(ctx context.Context) (int64, error) {
	n, err := r.alerts.DeactivateExpired(ctx, r.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.RetentionDeletedTotal.WithLabelValues("alerts_deactivated").Add(float64(n))
		r.logger.Info("deactivated expired alerts", slog.Int64("count", n))
	}
	return n, nil
}

// RunDaily runs every daily sweep. A failing sweep does not stop the others;
// their errors are joined.
func (r *Retention) RunDaily(ctx context.Context) (RetentionReport, error) {
	now := r.now()
	var (
		report RetentionReport
		errs   []error
		err    error
	)

	report.SamplesDeleted, err = r.samples.DeleteSamplesBefore(ctx, now.Add(-r.cfg.SampleMaxAge), r.cfg.BatchSize)
	if err != nil {
		r.logger.Error("sample retention failed", slog.Any("error", err))
		errs = append(errs, err)
	}

	report.AlertsDeleted, err = r.alerts.DeleteExpired(ctx, now)
	if err != nil {
		r.logger.Error("expired alert deletion failed", slog.Any("error", err))
		errs = append(errs, err)
	}

	report.IncidentsArchived, err = r.incidents.ArchiveResolvedBefore(ctx, now.Add(-r.cfg.IncidentMaxAge), r.cfg.BatchSize)
	if err != nil {
		r.logger.Error("incident archival failed", slog.Any("error", err))
		errs = append(errs, err)
	}

	metrics.RetentionDeletedTotal.WithLabelValues("samples").Add(float64(report.SamplesDeleted))
	metrics.RetentionDeletedTotal.WithLabelValues("alerts").Add(float64(report.AlertsDeleted))
	metrics.RetentionDeletedTotal.WithLabelValues("incidents_archived").Add(float64(report.IncidentsArchived))

	r.logger.Info("daily retention finished",
		slog.Int64("samples_deleted", report.SamplesDeleted),
		slog.Int64("alerts_deleted", report.AlertsDeleted),
		slog.Int64("incidents_archived", report.IncidentsArchived),
	)
	return report, errors.Join(errs...)
}

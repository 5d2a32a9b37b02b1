package service

import (
	"context"
	"log/slog"
	"time"

	"crowdWatch/internal/density"
	"crowdWatch/internal/domain"
	"crowdWatch/internal/geo"
	"crowdWatch/internal/metrics"
	"crowdWatch/pkg/e"
)

type AggregatorConfig struct {
	// Lookback is the sample window read by one cycle.
	Lookback time.Duration
	// SampleGrace is how long samples survive before per-cycle cleanup.
	SampleGrace time.Duration
	BatchSize   int
}

func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{
		Lookback:    30 * time.Second,
		SampleGrace: 5 * time.Minute,
		BatchSize:   400,
	}
}

// Aggregator runs one aggregation cycle at a time per call:
// FetchSamples, FetchZones, Classify, ComputeDensity, Persist,
// AlertAndDispatch, Cleanup. Cycles carry no state between calls.
type Aggregator struct {
	samples   SampleRepository
	zones     ZoneSource
	readings  ReadingRepository
	alerts    AlertEvaluator
	evaluator *density.Evaluator
	cfg       AggregatorConfig
	logger    *slog.Logger
	now       func() time.Time
}

func NewAggregator(
	samples SampleRepository,
	zones ZoneSource,
	readings ReadingRepository,
	alerts AlertEvaluator,
	evaluator *density.Evaluator,
	cfg AggregatorConfig,
	logger *slog.Logger,
) *Aggregator {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 400
	}
	return &Aggregator{
		samples:   samples,
		zones:     zones,
		readings:  readings,
		alerts:    alerts,
		evaluator: evaluator,
		cfg:       cfg,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// RunCycle executes one cycle. An error means the cycle aborted at the failing
// step; nothing is retried and the next scheduled cycle starts from scratch.
func (a *Aggregator) RunCycle(ctx context.Context) (domain.CycleReport, error) {
	start := a.now()
	report := domain.CycleReport{StartedAt: start}

	report, err := a.run(ctx, report)

	report.Duration = a.now().Sub(start)
	if err != nil {
		report.Outcome = domain.CycleFailed
		a.logger.Error("aggregation cycle failed", slog.Any("error", err))
	}
	metrics.CyclesTotal.WithLabelValues(string(report.Outcome)).Inc()
	metrics.CycleDuration.Observe(report.Duration.Seconds())
	return report, err
}

func (a *Aggregator) run(ctx context.Context, report domain.CycleReport) (domain.CycleReport, error) {
	const op = "service.Aggregator.RunCycle"
	start := report.StartedAt

	samples, err := a.samples.SamplesSince(ctx, start.Add(-a.cfg.Lookback))
	if err != nil {
		return report, e.Wrap(op+": fetch samples", err)
	}
	report.Samples = len(samples)

	if len(samples) == 0 {
		a.logger.Info("no recent location samples")
		report.Outcome = domain.CycleNoSamples
		return a.cleanup(ctx, report)
	}

	zones, err := a.zones.ListZones(ctx)
	if err != nil {
		return report, e.Wrap(op+": fetch zones", err)
	}
	report.Zones = len(zones)

	if len(zones) == 0 {
		a.logger.Warn("no zones configured")
		report.Outcome = domain.CycleNoZonesConfigured
		return a.cleanup(ctx, report)
	}

	classifier := geo.NewClassifier(zones)
	if skipped := classifier.Skipped(); len(skipped) > 0 {
		a.logger.Warn("zones without a usable boundary", slog.Any("zone_ids", skipped))
	}
	counts, unassigned := classifier.Bucket(zones, samples)
	report.Unassigned = unassigned

	readings := a.computeReadings(zones, counts, start)

	if err := a.persist(ctx, readings); err != nil {
		return report, e.Wrap(op+": persist readings", err)
	}
	report.Readings = len(readings)

	for _, r := range readings {
		alert, err := a.alerts.EvaluateReading(ctx, r)
		if err != nil {
			report.AlertErrors++
			a.logger.Error("alert evaluation failed", slog.String("zone_id", r.ZoneID), slog.Any("error", err))
			continue
		}
		if alert != nil {
			report.AlertsCreated++
		}
	}

	a.logger.Info("density aggregation complete",
		slog.Int("samples", report.Samples),
		slog.Int("zones", report.Zones),
		slog.Int("unassigned", report.Unassigned),
		slog.Int("alerts", report.AlertsCreated),
	)

	report.Outcome = domain.CycleCompleted
	return a.cleanup(ctx, report)
}

func (a *Aggregator) computeReadings(zones []domain.Zone, counts map[string]int, at time.Time) []domain.DensityReading {
	readings := make([]domain.DensityReading, 0, len(zones))
	for _, z := range zones {
		capacity := z.Capacity
		if capacity <= 0 {
			capacity = 1
		}
		count := counts[z.ID]

		raw, _ := a.evaluator.Evaluate(count, geo.Area(z.Boundary), capacity)
		value := density.Round4(raw)

		readings = append(readings, domain.DensityReading{
			ZoneID:            z.ID,
			ZoneName:          z.Name,
			EventID:           z.EventID,
			CurrentPopulation: count,
			Capacity:          capacity,
			DensityValue:      value,
			Status:            a.evaluator.Status(value),
			LastUpdated:       at,
		})
		metrics.ZonePopulation.WithLabelValues(z.ID).Set(float64(count))
	}
	return readings
}

// persist upserts readings in batches; each batch is all-or-nothing.
func (a *Aggregator) persist(ctx context.Context, readings []domain.DensityReading) error {
	for start := 0; start < len(readings); start += a.cfg.BatchSize {
		end := start + a.cfg.BatchSize
		if end > len(readings) {
			end = len(readings)
		}
		if err := a.readings.UpsertReadings(ctx, readings[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (a *Aggregator) cleanup(ctx context.Context, report domain.CycleReport) (domain.CycleReport, error) {
	deleted, err := a.samples.DeleteSamplesBefore(ctx, report.StartedAt.Add(-a.cfg.SampleGrace), a.cfg.BatchSize)
	report.SamplesDeleted = deleted
	if err != nil {
		return report, e.Wrap("service.Aggregator.cleanup", err)
	}
	if deleted > 0 {
		metrics.RetentionDeletedTotal.WithLabelValues("cycle_samples").Add(float64(deleted))
		a.logger.Info("stale location samples deleted", slog.Int64("count", deleted))
	}
	return report, nil
}

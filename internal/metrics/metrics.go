package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crowdwatch",
		Name:      "aggregation_cycles_total",
		Help:      "Aggregation cycles by terminal outcome.",
	}, []string{"outcome"})

	CycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "crowdwatch",
		Name:      "aggregation_cycle_duration_seconds",
		Help:      "Wall time of one aggregation cycle.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
	})

	ZonePopulation = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "crowdwatch",
		Name:      "zone_population",
		Help:      "People counted in a zone during the last cycle.",
	}, []string{"zone_id"})

	AlertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crowdwatch",
		Name:      "alerts_total",
		Help:      "Congestion alert decisions by result (created, suppressed, failed).",
	}, []string{"result", "severity"})

	PushSendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crowdwatch",
		Name:      "push_sends_total",
		Help:      "Topic push attempts by result.",
	}, []string{"result"})

	NotificationRecordsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "crowdwatch",
		Name:      "notification_records_total",
		Help:      "Per-user notification records written.",
	})

	RetentionDeletedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crowdwatch",
		Name:      "retention_rows_total",
		Help:      "Rows removed or archived by housekeeping, by kind.",
	}, []string{"kind"})

	PushOutboxTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crowdwatch",
		Name:      "push_outbox_total",
		Help:      "Outbox messages handled by the relay, by result.",
	}, []string{"result"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crowdwatch",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route pattern and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "crowdwatch",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

package domain

import "time"

type CycleOutcome string

const (
	CycleNoSamples         CycleOutcome = "no_samples"
	CycleNoZonesConfigured CycleOutcome = "no_zones_configured"
	CycleCompleted         CycleOutcome = "completed"
	CycleFailed            CycleOutcome = "failed"
)

type CycleReport struct {
	Outcome        CycleOutcome  `json:"outcome"`
	StartedAt      time.Time     `json:"started_at"`
	Samples        int           `json:"samples"`
	Zones          int           `json:"zones"`
	Unassigned     int           `json:"unassigned"`
	Readings       int           `json:"readings"`
	AlertsCreated  int           `json:"alerts_created"`
	AlertErrors    int           `json:"alert_errors"`
	SamplesDeleted int64         `json:"samples_deleted"`
	Duration       time.Duration `json:"duration"`
}

package service

import (
	"context"
	"time"

	"crowdWatch/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type SampleRepository interface {
	InsertSample(ctx context.Context, sample *domain.LocationSample) error
	SamplesSince(ctx context.Context, since time.Time) ([]domain.LocationSample, error)
	DeleteSamplesBefore(ctx context.Context, cutoff time.Time, batchSize int) (int64, error)
}

type ZoneSource interface {
	ListZones(ctx context.Context) ([]domain.Zone, error)
}

type ZoneWriter interface {
	UpsertZone(ctx context.Context, zone domain.Zone) error
}

// ZoneCacheInvalidator drops any cached zone list after a zone write.
type ZoneCacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type ReadingRepository interface {
	UpsertReadings(ctx context.Context, readings []domain.DensityReading) error
	GetReading(ctx context.Context, zoneID string) (*domain.DensityReading, error)
	ListReadingsByEvent(ctx context.Context, eventID string) ([]domain.DensityReading, error)
}

type AlertRepository interface {
	CreateAlert(ctx context.Context, alert *domain.Alert) error
	HasActiveSince(ctx context.Context, eventID, zoneID, alertType string, since time.Time) (bool, error)
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type IncidentRepository interface {
	CreateIncident(ctx context.Context, incident *domain.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	UpdateIncidentStatus(ctx context.Context, id uuid.UUID, status domain.IncidentStatus, at time.Time) error
	ArchiveResolvedBefore(ctx context.Context, cutoff time.Time, batchSize int) (int64, error)
}

type UserRepository interface {
	ActiveUsersByRoles(ctx context.Context, roles []string) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

type NotificationRepository interface {
	InsertNotifications(ctx context.Context, records []domain.NotificationRecord) error
	ListForUser(ctx context.Context, userID string, limit int) ([]domain.NotificationRecord, error)
}

// Broadcaster delivers topic-addressed pushes and manages topic subscriptions.
type Broadcaster interface {
	Send(ctx context.Context, msg domain.PushMessage) error
	Subscribe(ctx context.Context, token, topic string) error
}

type Notifier interface {
	BroadcastToTopics(ctx context.Context, topics []string, title, body string, data map[string]string, severity string) domain.BroadcastReport
	PersistNotificationRecords(ctx context.Context, title, body, notificationType, referenceID string, targetRoles []string) (int, error)
}

type AlertEvaluator interface {
	EvaluateReading(ctx context.Context, reading domain.DensityReading) (*domain.Alert, error)
}

type Service struct {
	Samples    *SampleService
	Zones      *ZoneService
	Aggregator *Aggregator
	Alerts     *AlertService
	Incidents  *IncidentService
	Users      *UserService
	Retention  *Retention
}

package service

import (
	"context"
	"log/slog"
	"time"

	"crowdWatch/internal/alerts"
	"crowdWatch/internal/domain"

	"github.com/google/uuid"
)

type IncidentService struct {
	repo     IncidentRepository
	notifier Notifier
	factory  *alerts.Factory
	logger   *slog.Logger
	now      func() time.Time
}

func NewIncidentService(repo IncidentRepository, notifier Notifier, factory *alerts.Factory, logger *slog.Logger) *IncidentService {
	return &IncidentService{
		repo:     repo,
		notifier: notifier,
		factory:  factory,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *IncidentService) Create(ctx context.Context, req domain.CreateIncidentRequest) (*domain.Incident, domain.BroadcastReport, error) {
	now := s.now()
	inc := domain.Incident{
		ID:          uuid.New(),
		Type:        req.Type,
		Severity:    req.Severity,
		Description: req.Description,
		Status:      domain.IncidentReported,
		EventID:     req.EventID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if inc.Type == "" {
		inc.Type = domain.IncidentOther
	}
	if inc.Severity == "" {
		inc.Severity = domain.IncidentLow
	}

	if err := s.repo.CreateIncident(ctx, &inc); err != nil {
		return nil, domain.BroadcastReport{}, err
	}

	report := s.OnIncidentCreated(ctx, inc)
	return &inc, report, nil
}

// UpdateStatus stores a status transition and announces it.
func (s *IncidentService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IncidentStatus) (*domain.Incident, domain.BroadcastReport, error) {
	before, err := s.repo.GetIncident(ctx, id)
	if err != nil {
		return nil, domain.BroadcastReport{}, err
	}

	at := s.now()
	if err := s.repo.UpdateIncidentStatus(ctx, id, status, at); err != nil {
		return nil, domain.BroadcastReport{}, err
	}

	after := *before
	after.Status = status
	after.UpdatedAt = at

	report, _ := s.OnIncidentUpdated(ctx, *before, after)
	return &after, report, nil
}

// OnIncidentCreated pushes a new incident to the organizer topic, escalating
// to the emergency channels for high and critical severity, and writes
// notification records for the matching roles.
func (s *IncidentService) OnIncidentCreated(ctx context.Context, inc domain.Incident) domain.BroadcastReport {
	title := alerts.IncidentTitle(inc.Type, inc.Severity)
	body := s.factory.IncidentBody(inc.Description)
	data := map[string]string{
		"type":         "incident",
		"incidentId":   inc.ID.String(),
		"incidentType": string(inc.Type),
		"severity":     string(inc.Severity),
	}

	report := s.notifier.BroadcastToTopics(ctx, alerts.IncidentTopics(inc.Severity), title, body, data, string(inc.Severity))

	if _, err := s.notifier.PersistNotificationRecords(ctx, title, body, domain.NotificationIncident, inc.ID.String(), alerts.IncidentRoles(inc.Severity)); err != nil {
		s.logger.Error("persist incident notifications failed", slog.String("incident_id", inc.ID.String()), slog.Any("error", err))
	}
	return report
}

// OnIncidentUpdated announces a status change to the responder topics. It
// reports false when the change carries no announcement.
func (s *IncidentService) OnIncidentUpdated(ctx context.Context, before, after domain.Incident) (domain.BroadcastReport, bool) {
	if before.Status == after.Status {
		return domain.BroadcastReport{}, false
	}
	title, body, ok := alerts.IncidentUpdate(after)
	if !ok {
		return domain.BroadcastReport{}, false
	}

	data := map[string]string{
		"type":       "incident_update",
		"incidentId": after.ID.String(),
		"newStatus":  string(after.Status),
	}
	report := s.notifier.BroadcastToTopics(ctx, alerts.IncidentUpdateTopics(), title, body, data, string(domain.SeverityInfo))

	s.logger.Info("incident update sent",
		slog.String("incident_id", after.ID.String()),
		slog.String("status", string(after.Status)),
		slog.Int("sent", report.Sent),
	)
	return report, true
}

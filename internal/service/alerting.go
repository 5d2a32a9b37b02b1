package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"crowdWatch/internal/alerts"
	"crowdWatch/internal/domain"
	"crowdWatch/internal/metrics"
	"crowdWatch/pkg/e"

	"github.com/google/uuid"
)

type AlertService struct {
	repo     AlertRepository
	notifier Notifier
	factory  *alerts.Factory
	dedup    *alerts.Deduplicator
	logger   *slog.Logger
	now      func() time.Time
}

func NewAlertService(repo AlertRepository, notifier Notifier, factory *alerts.Factory, dedup *alerts.Deduplicator, logger *slog.Logger) *AlertService {
	return &AlertService{
		repo:     repo,
		notifier: notifier,
		factory:  factory,
		dedup:    dedup,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// EvaluateReading creates and dispatches a congestion alert when the reading
// reaches an alert band and no active alert for the same zone was created
// within the dedup window. A nil alert with a nil error means nothing was due.
func (s *AlertService) EvaluateReading(ctx context.Context, r domain.DensityReading) (*domain.Alert, error) {
	severity, value := s.factory.Severity(r)
	if severity == domain.SeverityNone {
		return nil, nil
	}

	now := s.now()
	alert := s.factory.Build(r, severity, value, now)

	created, err := s.dedup.Admit(ctx, r.ZoneID, r.EventID, alert.Type, now, func(ctx context.Context) error {
		return s.repo.CreateAlert(ctx, &alert)
	})
	if err != nil {
		metrics.AlertsTotal.WithLabelValues("failed", string(severity)).Inc()
		return nil, e.Wrap(fmt.Sprintf("congestion alert for zone %s", r.ZoneID), err)
	}
	if !created {
		metrics.AlertsTotal.WithLabelValues("suppressed", string(severity)).Inc()
		return nil, nil
	}
	metrics.AlertsTotal.WithLabelValues("created", string(severity)).Inc()

	s.logger.Info("auto-alert created",
		slog.String("alert_id", alert.ID.String()),
		slog.String("zone_id", alert.ZoneID),
		slog.String("severity", string(severity)),
		slog.Float64("value", value),
	)

	s.dispatchSystemAlert(ctx, alert)
	return &alert, nil
}

func (s *AlertService) dispatchSystemAlert(ctx context.Context, alert domain.Alert) {
	data := map[string]string{
		"type":     "crowd_density",
		"alertId":  alert.ID.String(),
		"severity": string(alert.Severity),
		"zoneId":   alert.ZoneID,
	}
	report := s.notifier.BroadcastToTopics(ctx, s.factory.PushTopics(alert), s.factory.PushTitle(alert.Severity), alert.Message, data, string(alert.Severity))

	if _, err := s.notifier.PersistNotificationRecords(ctx, s.factory.PushTitle(alert.Severity), alert.Message, domain.NotificationAlert, alert.ID.String(), alert.TargetRoles); err != nil {
		s.logger.Error("persist auto-alert notifications failed", slog.String("alert_id", alert.ID.String()), slog.Any("error", err))
	}
	if report.Failed > 0 {
		s.logger.Warn("auto-alert partially delivered",
			slog.String("alert_id", alert.ID.String()),
			slog.Int("sent", report.Sent),
			slog.Int("failed", report.Failed),
		)
	}
}

// CreateAlert stores an operator alert and dispatches it to its target roles.
func (s *AlertService) CreateAlert(ctx context.Context, req domain.CreateAlertRequest) (*domain.Alert, domain.BroadcastReport, error) {
	if strings.EqualFold(req.CreatedBy, domain.CreatedBySystem) {
		return nil, domain.BroadcastReport{}, fmt.Errorf("created_by %q is reserved: %w", req.CreatedBy, e.ErrInvalidInput)
	}

	now := s.now()
	alert := domain.Alert{
		ID:            uuid.New(),
		Type:          req.Type,
		Message:       req.Message,
		Severity:      req.Severity,
		EventID:       req.EventID,
		ZoneID:        req.ZoneID,
		TargetRoles:   req.TargetRoles,
		IsActive:      true,
		CreatedBy:     req.CreatedBy,
		CreatedByName: req.CreatedByName,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.factory.Profile().AlertTTL),
	}
	if alert.Type == "" {
		alert.Type = domain.AlertTypeGeneral
	}

	if err := s.repo.CreateAlert(ctx, &alert); err != nil {
		return nil, domain.BroadcastReport{}, err
	}

	report, err := s.OnAlertCreated(ctx, alert)
	if err != nil {
		s.logger.Warn("alert stored without dispatch", slog.String("alert_id", alert.ID.String()), slog.Any("error", err))
	}
	return &alert, report, nil
}

// OnAlertCreated broadcasts a newly stored alert to each target role topic and
// writes notification records for the matching users. System alerts were
// already dispatched when they were created and are skipped.
func (s *AlertService) OnAlertCreated(ctx context.Context, alert domain.Alert) (domain.BroadcastReport, error) {
	if alert.CreatedBy == domain.CreatedBySystem {
		return domain.BroadcastReport{}, nil
	}
	if len(alert.TargetRoles) == 0 {
		s.logger.Warn("alert has no target roles, skipping push", slog.String("alert_id", alert.ID.String()))
		return domain.BroadcastReport{}, e.ErrNoTargetRoles
	}

	severity := alert.Severity
	if severity == domain.SeverityNone {
		severity = domain.SeverityInfo
	}
	alertType := alert.Type
	if alertType == "" {
		alertType = domain.AlertTypeGeneral
	}

	title := alerts.AlertTitle(severity)
	data := map[string]string{
		"type":      "alert",
		"alertId":   alert.ID.String(),
		"severity":  string(severity),
		"alertType": alertType,
	}

	report := s.notifier.BroadcastToTopics(ctx, alert.TargetRoles, title, alert.Message, data, string(severity))

	if _, err := s.notifier.PersistNotificationRecords(ctx, title, alert.Message, domain.NotificationAlert, alert.ID.String(), alert.TargetRoles); err != nil {
		s.logger.Error("persist alert notifications failed", slog.String("alert_id", alert.ID.String()), slog.Any("error", err))
	}

	s.logger.Info("alert broadcasted",
		slog.String("alert_id", alert.ID.String()),
		slog.Any("roles", alert.TargetRoles),
		slog.String("severity", string(severity)),
	)
	return report, nil
}

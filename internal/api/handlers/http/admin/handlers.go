package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"crowdWatch/internal/domain"
	"crowdWatch/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AlertCreator interface {
	CreateAlert(ctx context.Context, req domain.CreateAlertRequest) (*domain.Alert, domain.BroadcastReport, error)
}

type IncidentManager interface {
	Create(ctx context.Context, req domain.CreateIncidentRequest) (*domain.Incident, domain.BroadcastReport, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IncidentStatus) (*domain.Incident, domain.BroadcastReport, error)
}

type UserManager interface {
	Bootstrap(ctx context.Context, userID string, req domain.BootstrapUserRequest) (domain.BootstrapResult, error)
	Notifications(ctx context.Context, userID string, limit int) ([]domain.NotificationRecord, error)
}

type ZoneManager interface {
	Upsert(ctx context.Context, id string, req domain.UpsertZoneRequest) (*domain.Zone, error)
}

type CycleRunner interface {
	RunCycle(ctx context.Context) (domain.CycleReport, error)
}

type Handler struct {
	logger    *slog.Logger
	Alerts    AlertCreator
	Incidents IncidentManager
	Users     UserManager
	Zones     ZoneManager
	Cycles    CycleRunner
}

func NewHandler(logger *slog.Logger, alerts AlertCreator, incidents IncidentManager, users UserManager, zones ZoneManager, cycles CycleRunner) *Handler {
	return &Handler{
		logger:    logger,
		Alerts:    alerts,
		Incidents: incidents,
		Users:     users,
		Zones:     zones,
		Cycles:    cycles,
	}
}

func (h *Handler) AdminAlertCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminAlertCreate", slog.String("remote", r.RemoteAddr))

	req, err := middleware.DecodeJSON[domain.CreateAlertRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	alert, report, err := h.Alerts.CreateAlert(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert created",
		slog.String("id", alert.ID.String()),
		slog.String("severity", string(alert.Severity)),
		slog.Int("push_sent", report.Sent),
		slog.Int("push_failed", report.Failed),
	)
	h.writeJSON(w, http.StatusCreated, map[string]any{"alert": alert, "push": report})
}

func (h *Handler) AdminIncidentCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminIncidentCreate", slog.String("remote", r.RemoteAddr))

	req, err := middleware.DecodeJSON[domain.CreateIncidentRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	incident, report, err := h.Incidents.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident created",
		slog.String("id", incident.ID.String()),
		slog.String("type", string(incident.Type)),
		slog.String("severity", string(incident.Severity)),
	)
	h.writeJSON(w, http.StatusCreated, map[string]any{"incident": incident, "push": report})
}

func (h *Handler) AdminIncidentStatus(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	req, err := middleware.DecodeJSON[domain.UpdateIncidentStatusRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	incident, report, err := h.Incidents.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"incident": incident, "push": report})
}

func (h *Handler) AdminZoneUpsert(w http.ResponseWriter, r *http.Request) {
	zoneID := strings.TrimSpace(chi.URLParam(r, "id"))

	req, err := middleware.DecodeJSON[domain.UpsertZoneRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	zone, err := h.Zones.Upsert(r.Context(), zoneID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, zone)
}

func (h *Handler) AdminUserBootstrap(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	userID := strings.TrimSpace(chi.URLParam(r, "id"))
	if userID == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user id required"})
		return
	}

	// the body is optional
	var req domain.BootstrapUserRequest
	if r.ContentLength != 0 {
		var err error
		if req, err = middleware.DecodeJSON[domain.BootstrapUserRequest](w, r); err != nil {
			h.handleError(w, r, err)
			return
		}
	}

	res, err := h.Users.Bootstrap(r.Context(), userID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("user bootstrapped",
		slog.String("user_id", userID),
		slog.String("role", res.Role),
		slog.String("state", string(res.State)),
	)
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) AdminUserNotifications(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "id"))
	limit := parseInt(r.URL.Query().Get("limit"), 50)

	records, err := h.Users.Notifications(r.Context(), userID, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"user_id": userID, "notifications": records})
}

func (h *Handler) AdminAggregate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	report, err := h.Cycles.RunCycle(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("manual aggregation cycle",
		slog.String("outcome", string(report.Outcome)),
		slog.Int("readings", report.Readings),
		slog.Int("alerts_created", report.AlertsCreated),
	)
	h.writeJSON(w, http.StatusOK, report)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

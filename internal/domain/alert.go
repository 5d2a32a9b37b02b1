package domain

import (
	"time"

	"github.com/google/uuid"
)

type AlertSeverity string

const (
	SeverityNone     AlertSeverity = ""
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

const (
	AlertTypeCongestion = "congestion"
	AlertTypeGeneral    = "general"

	CreatedBySystem     = "system"
	CreatedBySystemName = "Auto-Alert System"
)

type Alert struct {
	ID            uuid.UUID     `json:"id"`
	Type          string        `json:"type"`
	Message       string        `json:"message"`
	Severity      AlertSeverity `json:"severity"`
	EventID       string        `json:"event_id"`
	ZoneID        string        `json:"zone_id"`
	ZoneName      string        `json:"zone_name,omitempty"`
	TargetRoles   []string      `json:"target_roles"`
	IsActive      bool          `json:"is_active"`
	CreatedBy     string        `json:"created_by"`
	CreatedByName string        `json:"created_by_name,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	ExpiresAt     time.Time     `json:"expires_at"`
}

type CreateAlertRequest struct {
	Type          string        `json:"type" validate:"omitempty,max=64"`
	Message       string        `json:"message" validate:"required,max=1000"`
	Severity      AlertSeverity `json:"severity" validate:"required,oneof=info warning critical"`
	EventID       string        `json:"event_id" validate:"omitempty,max=128"`
	ZoneID        string        `json:"zone_id" validate:"omitempty,max=128"`
	TargetRoles   []string      `json:"target_roles" validate:"required,min=1,dive,role"`
	CreatedBy     string        `json:"created_by" validate:"required,max=128"`
	CreatedByName string        `json:"created_by_name" validate:"omitempty,max=128"`
}

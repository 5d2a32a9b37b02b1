package domain

import (
	"time"

	"github.com/google/uuid"
)

type IncidentType string

const (
	IncidentMedical      IncidentType = "medical"
	IncidentSecurity     IncidentType = "security"
	IncidentOvercrowding IncidentType = "overcrowding"
	IncidentFacility     IncidentType = "facility"
	IncidentOther        IncidentType = "other"
)

type IncidentSeverity string

const (
	IncidentLow      IncidentSeverity = "low"
	IncidentMedium   IncidentSeverity = "medium"
	IncidentHigh     IncidentSeverity = "high"
	IncidentCritical IncidentSeverity = "critical"
)

type IncidentStatus string

const (
	IncidentReported   IncidentStatus = "reported"
	IncidentDispatched IncidentStatus = "dispatched"
	IncidentOnSite     IncidentStatus = "on_site"
	IncidentResolved   IncidentStatus = "resolved"
)

type Incident struct {
	ID          uuid.UUID        `json:"id"`
	Type        IncidentType     `json:"type"`
	Severity    IncidentSeverity `json:"severity"`
	Description string           `json:"description"`
	Status      IncidentStatus   `json:"status"`
	EventID     string           `json:"event_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type CreateIncidentRequest struct {
	Type        IncidentType     `json:"type" validate:"omitempty,oneof=medical security overcrowding facility other"`
	Severity    IncidentSeverity `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	Description string           `json:"description" validate:"max=5000"`
	EventID     string           `json:"event_id" validate:"omitempty,max=128"`
}

type UpdateIncidentStatusRequest struct {
	Status IncidentStatus `json:"status" validate:"required,oneof=reported dispatched on_site resolved"`
}

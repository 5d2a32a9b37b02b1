package alerts

import (
	"fmt"
	"math"
	"strings"
	"time"

	"crowdWatch/internal/density"
	"crowdWatch/internal/domain"

	"github.com/google/uuid"
)

type Factory struct {
	profile Profile
}

func NewFactory(profile Profile) *Factory {
	return &Factory{profile: profile}
}

func (f *Factory) Profile() Profile { return f.profile }

// Severity grades a reading on the configured basis. SeverityNone means the
// reading is below the lowest band and no alert is attempted.
func (f *Factory) Severity(r domain.DensityReading) (domain.AlertSeverity, float64) {
	value := density.AlertValue(r, f.profile.Basis)
	return density.Grade(value, f.profile.Active().Bands), value
}

// Build composes a system congestion alert for a zone reading.
func (f *Factory) Build(r domain.DensityReading, severity domain.AlertSeverity, value float64, now time.Time) domain.Alert {
	bp := f.profile.Active()

	return domain.Alert{
		ID:            uuid.New(),
		Type:          domain.AlertTypeCongestion,
		Message:       f.Message(severity, zoneName(r), value),
		Severity:      severity,
		EventID:       r.EventID,
		ZoneID:        r.ZoneID,
		ZoneName:      r.ZoneName,
		TargetRoles:   cloneRoles(bp.TargetRoles[severity]),
		IsActive:      true,
		CreatedBy:     domain.CreatedBySystem,
		CreatedByName: domain.CreatedBySystemName,
		CreatedAt:     now,
		ExpiresAt:     now.Add(f.profile.AlertTTL),
	}
}

func (f *Factory) Message(severity domain.AlertSeverity, zone string, value float64) string {
	tmpl, ok := f.profile.Active().Messages[severity]
	if !ok {
		tmpl = "{zone} crowd level is {value}."
	}
	return strings.NewReplacer("{zone}", zone, "{value}", f.formatValue(value)).Replace(tmpl)
}

// PushTitle is the push title of a system alert.
func (f *Factory) PushTitle(severity domain.AlertSeverity) string {
	if t, ok := f.profile.Active().PushTitles[severity]; ok {
		return t
	}
	return AlertTitle(severity)
}

// PushTopics are the destinations of a system alert push.
func (f *Factory) PushTopics(a domain.Alert) []string {
	if topics := f.profile.Active().PushTopics; len(topics) > 0 {
		return cloneRoles(topics)
	}
	return cloneRoles(a.TargetRoles)
}

func (f *Factory) formatValue(v float64) string {
	if f.profile.Basis == density.BasisOccupancy {
		return fmt.Sprintf("%d", int(math.Round(v*100)))
	}
	return fmt.Sprintf("%.1f", v)
}

// AlertTitle is the push title of an alert broadcast to its target roles.
func AlertTitle(severity domain.AlertSeverity) string {
	switch severity {
	case domain.SeverityCritical:
		return "CRITICAL ALERT"
	case domain.SeverityWarning:
		return "Warning Alert"
	default:
		return "Alert"
	}
}

var incidentLabels = map[domain.IncidentType]string{
	domain.IncidentMedical:      "Medical Emergency",
	domain.IncidentSecurity:     "Security Incident",
	domain.IncidentOvercrowding: "Overcrowding Alert",
	domain.IncidentFacility:     "Facility Issue",
	domain.IncidentOther:        "Incident Report",
}

func IncidentTitle(t domain.IncidentType, severity domain.IncidentSeverity) string {
	label, ok := incidentLabels[t]
	if !ok {
		label = "Incident"
	}
	if severity == domain.IncidentCritical {
		return label + " - CRITICAL"
	}
	return label
}

// IncidentBody truncates the description to the configured character budget.
func (f *Factory) IncidentBody(description string) string {
	return Truncate(description, f.profile.IncidentBodyLimit)
}

// Truncate cuts s to limit runes and marks the cut with "...".
func Truncate(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 || len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}

var statusMessages = map[domain.IncidentStatus]string{
	domain.IncidentDispatched: "Help is on the way",
	domain.IncidentOnSite:     "Responders have arrived",
	domain.IncidentResolved:   "Incident has been resolved",
}

// IncidentUpdate builds the title and body announcing a status transition.
// Statuses without an announcement return false.
func IncidentUpdate(inc domain.Incident) (string, string, bool) {
	msg, ok := statusMessages[inc.Status]
	if !ok {
		return "", "", false
	}
	title := "Incident Update: " + msg
	body := fmt.Sprintf("%s incident status changed to %s", inc.Type, inc.Status)
	return title, body, true
}

// IncidentTopics are the push topics of a new incident.
func IncidentTopics(severity domain.IncidentSeverity) []string {
	topics := []string{"organizer"}
	if escalated(severity) {
		topics = append(topics, "emergency_alerts", "incidents_critical")
	}
	return topics
}

// IncidentRoles are the roles that get notification records for a new incident.
func IncidentRoles(severity domain.IncidentSeverity) []string {
	roles := []string{domain.RoleOrganizer}
	if escalated(severity) {
		roles = append(roles, domain.RoleEmergency, domain.RoleSecurity)
	}
	return roles
}

// IncidentUpdateTopics receive status transition pushes.
func IncidentUpdateTopics() []string {
	return []string{domain.RoleSecurity, domain.RoleEmergency}
}

func escalated(s domain.IncidentSeverity) bool {
	return s == domain.IncidentHigh || s == domain.IncidentCritical
}

func zoneName(r domain.DensityReading) string {
	if r.ZoneName == "" {
		return "Unknown Zone"
	}
	return r.ZoneName
}

func cloneRoles(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

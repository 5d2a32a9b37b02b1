package alerts

import (
	"strings"
	"testing"
	"time"

	"crowdWatch/internal/density"
	"crowdWatch/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestFactory_Build_OccupancyCritical(t *testing.T) {
	t.Parallel()

	f := NewFactory(DefaultProfile())
	r := domain.DensityReading{
		ZoneID: "z1", ZoneName: "North Stand", EventID: "ev1",
		CurrentPopulation: 230, Capacity: 100, DensityValue: 4.6,
		Status: domain.DensityCritical,
	}

	sev, value := f.Severity(r)
	require.Equal(t, domain.SeverityCritical, sev)
	require.InDelta(t, 2.3, value, 1e-12)

	now := time.Date(2026, 6, 11, 18, 0, 0, 0, time.UTC)
	a := f.Build(r, sev, value, now)

	require.Equal(t, domain.AlertTypeCongestion, a.Type)
	require.Equal(t, "CRITICAL: North Stand is at 230% capacity! Immediate crowd control required.", a.Message)
	require.Equal(t, []string{"fan", "organizer", "security", "emergency"}, a.TargetRoles)
	require.Equal(t, now.Add(2*time.Hour), a.ExpiresAt)
	require.True(t, a.IsActive)
	require.Equal(t, domain.CreatedBySystem, a.CreatedBy)
	require.Equal(t, "CRITICAL ALERT", f.PushTitle(sev))
	require.Equal(t, a.TargetRoles, f.PushTopics(a))
}

func TestFactory_AreaBasis(t *testing.T) {
	t.Parallel()

	p := DefaultProfile()
	p.Basis = density.BasisArea
	f := NewFactory(p)

	r := domain.DensityReading{ZoneID: "z1", EventID: "ev1", CurrentPopulation: 160, Capacity: 100, DensityValue: 3.2}
	sev, value := f.Severity(r)
	require.Equal(t, domain.SeverityWarning, sev)

	a := f.Build(r, sev, value, time.Now())
	require.Equal(t, "Warning: Unknown Zone density is 3.2 p/m2. Consider redirecting foot traffic.", a.Message)
	require.Equal(t, []string{"organizer", "security"}, a.TargetRoles)
	require.Equal(t, []string{"security_alerts", "emergency_alerts"}, f.PushTopics(a))
	require.Equal(t, "Crowd Density Warning", f.PushTitle(sev))

	below, _ := f.Severity(domain.DensityReading{DensityValue: 2.99})
	require.Equal(t, domain.SeverityNone, below)
}

func TestFactory_Build_TargetRolesAreCopies(t *testing.T) {
	t.Parallel()

	f := NewFactory(DefaultProfile())
	a := f.Build(domain.DensityReading{}, domain.SeverityInfo, 0.7, time.Now())
	a.TargetRoles[0] = "mutated"

	b := f.Build(domain.DensityReading{}, domain.SeverityInfo, 0.7, time.Now())
	require.Equal(t, []string{"fan"}, b.TargetRoles)
}

func TestIncidentTitle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		typ  domain.IncidentType
		sev  domain.IncidentSeverity
		want string
	}{
		{domain.IncidentMedical, domain.IncidentCritical, "Medical Emergency - CRITICAL"},
		{domain.IncidentSecurity, domain.IncidentHigh, "Security Incident"},
		{domain.IncidentOvercrowding, domain.IncidentLow, "Overcrowding Alert"},
		{domain.IncidentFacility, domain.IncidentMedium, "Facility Issue"},
		{domain.IncidentOther, domain.IncidentCritical, "Incident Report - CRITICAL"},
		{"flood", domain.IncidentLow, "Incident"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, IncidentTitle(tc.typ, tc.sev))
	}
}

func TestIncidentBody_Truncates(t *testing.T) {
	t.Parallel()

	f := NewFactory(DefaultProfile())
	desc := strings.Repeat("a", 200)

	body := f.IncidentBody(desc)
	require.True(t, strings.HasSuffix(body, "..."))
	require.Len(t, body, 123)

	short := "Person fainted near gate 4"
	require.Equal(t, short, f.IncidentBody(short))
	require.Equal(t, strings.Repeat("b", 120), f.IncidentBody(strings.Repeat("b", 120)))
}

func TestIncidentUpdate(t *testing.T) {
	t.Parallel()

	title, body, ok := IncidentUpdate(domain.Incident{Type: domain.IncidentMedical, Status: domain.IncidentOnSite})
	require.True(t, ok)
	require.Equal(t, "Incident Update: Responders have arrived", title)
	require.Equal(t, "medical incident status changed to on_site", body)

	_, _, ok = IncidentUpdate(domain.Incident{Status: domain.IncidentReported})
	require.False(t, ok)
}

func TestIncidentRouting(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"organizer"}, IncidentTopics(domain.IncidentLow))
	require.Equal(t, []string{"organizer", "emergency_alerts", "incidents_critical"}, IncidentTopics(domain.IncidentHigh))
	require.Equal(t, []string{"organizer"}, IncidentRoles(domain.IncidentMedium))
	require.Equal(t, []string{"organizer", "emergency", "security"}, IncidentRoles(domain.IncidentCritical))
}

func TestAlertTitle(t *testing.T) {
	t.Parallel()

	require.Equal(t, "CRITICAL ALERT", AlertTitle(domain.SeverityCritical))
	require.Equal(t, "Warning Alert", AlertTitle(domain.SeverityWarning))
	require.Equal(t, "Alert", AlertTitle(domain.SeverityInfo))
}

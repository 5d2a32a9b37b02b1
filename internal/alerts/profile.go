package alerts

import (
	"fmt"
	"os"
	"time"

	"crowdWatch/internal/density"
	"crowdWatch/internal/domain"

	"gopkg.in/yaml.v3"
)

// BasisProfile is the severity ladder and the lookup tables used when a
// deployment grades alerts on one density basis.
type BasisProfile struct {
	Bands []density.Band `yaml:"bands"`
	// Messages use {zone} and {value} placeholders.
	Messages    map[domain.AlertSeverity]string   `yaml:"messages"`
	TargetRoles map[domain.AlertSeverity][]string `yaml:"target_roles"`
	PushTitles  map[domain.AlertSeverity]string   `yaml:"push_titles"`
	// PushTopics overrides the target roles as push destinations when set.
	PushTopics []string `yaml:"push_topics"`
}

// Profile holds every tunable of the alerting engine. It is built once at
// startup and shared read-only.
type Profile struct {
	Basis         density.Basis             `yaml:"basis"`
	Status        density.StatusBreakpoints `yaml:"status"`
	AreaFloor     float64                   `yaml:"area_floor"`
	PerPersonArea float64                   `yaml:"per_person_area"`

	Area      BasisProfile `yaml:"area"`
	Occupancy BasisProfile `yaml:"occupancy"`

	// RoleTopics lists broadcast topics a role subscribes to on top of its own role topic.
	RoleTopics  map[string][]string `yaml:"role_topics"`
	DefaultRole string              `yaml:"default_role"`

	DedupWindow       time.Duration `yaml:"dedup_window"`
	AlertTTL          time.Duration `yaml:"alert_ttl"`
	IncidentBodyLimit int           `yaml:"incident_body_limit"`

	// MaxInFilter bounds role values per user query; MaxBatchWrites bounds one delete/archive batch.
	MaxInFilter    int `yaml:"max_in_filter"`
	MaxBatchWrites int `yaml:"max_batch_writes"`
}

func DefaultProfile() Profile {
	return Profile{
		Basis:         density.BasisOccupancy,
		Status:        density.DefaultStatusBreakpoints(),
		AreaFloor:     1,
		PerPersonArea: 0.5,
		Area: BasisProfile{
			Bands: []density.Band{
				{Threshold: 3.0, Severity: domain.SeverityWarning},
				{Threshold: 4.5, Severity: domain.SeverityCritical},
			},
			Messages: map[domain.AlertSeverity]string{
				domain.SeverityCritical: "CRITICAL: {zone} density is {value} p/m2. Immediate crowd control required.",
				domain.SeverityWarning:  "Warning: {zone} density is {value} p/m2. Consider redirecting foot traffic.",
			},
			TargetRoles: map[domain.AlertSeverity][]string{
				domain.SeverityCritical: {domain.RoleFan, domain.RoleOrganizer, domain.RoleSecurity, domain.RoleEmergency},
				domain.SeverityWarning:  {domain.RoleOrganizer, domain.RoleSecurity},
			},
			PushTitles: map[domain.AlertSeverity]string{
				domain.SeverityCritical: "CRITICAL DENSITY ALERT",
				domain.SeverityWarning:  "Crowd Density Warning",
			},
			PushTopics: []string{"security_alerts", "emergency_alerts"},
		},
		Occupancy: BasisProfile{
			Bands: []density.Band{
				{Threshold: 0.7, Severity: domain.SeverityInfo},
				{Threshold: 0.85, Severity: domain.SeverityWarning},
				{Threshold: 0.95, Severity: domain.SeverityCritical},
			},
			Messages: map[domain.AlertSeverity]string{
				domain.SeverityCritical: "CRITICAL: {zone} is at {value}% capacity! Immediate crowd control required.",
				domain.SeverityWarning:  "Warning: {zone} is experiencing high congestion ({value}% capacity). Consider alternate routes.",
				domain.SeverityInfo:     "{zone} is filling up ({value}% capacity). Please be aware of crowd levels.",
			},
			TargetRoles: map[domain.AlertSeverity][]string{
				domain.SeverityCritical: {domain.RoleFan, domain.RoleOrganizer, domain.RoleSecurity, domain.RoleEmergency},
				domain.SeverityWarning:  {domain.RoleFan, domain.RoleSecurity, domain.RoleOrganizer},
				domain.SeverityInfo:     {domain.RoleFan},
			},
			PushTitles: map[domain.AlertSeverity]string{
				domain.SeverityCritical: "CRITICAL ALERT",
				domain.SeverityWarning:  "Warning Alert",
				domain.SeverityInfo:     "Alert",
			},
		},
		RoleTopics: map[string][]string{
			domain.RoleFan:       {"general_announcements"},
			domain.RoleOrganizer: {"organizer", "general_announcements"},
			domain.RoleSecurity:  {"security_alerts", "general_announcements"},
			domain.RoleEmergency: {"emergency_alerts", "security_alerts", "general_announcements"},
		},
		DefaultRole:       domain.RoleFan,
		DedupWindow:       30 * time.Minute,
		AlertTTL:          2 * time.Hour,
		IncidentBodyLimit: 120,
		MaxInFilter:       30,
		MaxBatchWrites:    400,
	}
}

// Active returns the tables of the configured basis.
func (p Profile) Active() BasisProfile {
	if p.Basis == density.BasisArea {
		return p.Area
	}
	return p.Occupancy
}

func (p Profile) DensityConfig() density.Config {
	return density.Config{
		Status:        p.Status,
		MinArea:       p.AreaFloor,
		PerPersonArea: p.PerPersonArea,
	}
}

// TopicsForRole is the role's own topic plus its broadcast topics, deduplicated,
// role topic first. Unknown roles get the default role's broadcast topics.
func (p Profile) TopicsForRole(role string) []string {
	extra, ok := p.RoleTopics[role]
	if !ok {
		extra = p.RoleTopics[p.DefaultRole]
	}

	seen := make(map[string]struct{}, len(extra)+1)
	out := make([]string, 0, len(extra)+1)
	for _, t := range append([]string{role}, extra...) {
		if _, dup := seen[t]; dup || t == "" {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func (p Profile) Validate() error {
	if _, err := density.ParseBasis(string(p.Basis)); err != nil {
		return err
	}
	s := p.Status
	if !(s.Moderate < s.High && s.High < s.Critical) {
		return fmt.Errorf("status breakpoints must ascend: %+v", s)
	}
	if len(p.Active().Bands) == 0 {
		return fmt.Errorf("no alert bands for basis %q", p.Basis)
	}
	if p.DedupWindow <= 0 || p.AlertTTL <= 0 {
		return fmt.Errorf("dedup window and alert ttl must be positive")
	}
	if p.MaxInFilter <= 0 || p.MaxBatchWrites <= 0 {
		return fmt.Errorf("query and batch caps must be positive")
	}
	if p.IncidentBodyLimit <= 0 {
		return fmt.Errorf("incident body limit must be positive")
	}
	return nil
}

// LoadProfile overlays the YAML file at path onto base. Keys absent from the
// file keep the base value.
func LoadProfile(path string, base Profile) (Profile, error) {
	if path == "" {
		return base, base.Validate()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read alerting profile: %w", err)
	}

	p := base
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return base, fmt.Errorf("parse alerting profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return base, fmt.Errorf("alerting profile: %w", err)
	}
	return p, nil
}

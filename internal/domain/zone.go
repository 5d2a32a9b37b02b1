package domain

import "time"

type Zone struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	EventID  string   `json:"event_id"`
	Boundary []LatLng `json:"boundary"`
	Capacity int      `json:"capacity"`
}

type UpsertZoneRequest struct {
	Name     string   `json:"name" validate:"required,max=128"`
	EventID  string   `json:"event_id" validate:"required,max=128"`
	Boundary []LatLng `json:"boundary" validate:"required,min=3,dive"`
	Capacity int      `json:"capacity" validate:"min=0"`
}

type DensityStatus string

const (
	DensitySafe     DensityStatus = "safe"
	DensityModerate DensityStatus = "moderate"
	DensityHigh     DensityStatus = "high"
	DensityCritical DensityStatus = "critical"
)

// DensityReading is the single current reading of a zone; every cycle overwrites it.
type DensityReading struct {
	ZoneID            string        `json:"zone_id"`
	ZoneName          string        `json:"zone_name"`
	EventID           string        `json:"event_id"`
	CurrentPopulation int           `json:"current_population"`
	Capacity          int           `json:"capacity"`
	DensityValue      float64       `json:"density_per_sq_meter"`
	Status            DensityStatus `json:"status"`
	LastUpdated       time.Time     `json:"last_updated"`
}

// Occupancy is the per-capacity ratio of the reading.
func (r DensityReading) Occupancy() float64 {
	if r.Capacity <= 0 {
		return 0
	}
	return float64(r.CurrentPopulation) / float64(r.Capacity)
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// LatLng is a boundary vertex or a sampled position, in degrees.
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat" validate:"lat"`
	Lng float64 `json:"lng" yaml:"lng" validate:"lng"`
}

type LocationSample struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

func (s LocationSample) Point() LatLng {
	return LatLng{Lat: s.Latitude, Lng: s.Longitude}
}

type IngestSampleRequest struct {
	UserID    string     `json:"user_id" validate:"required,uuid"`
	Lat       float64    `json:"lat" validate:"lat"`
	Lng       float64    `json:"lng" validate:"lng"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type IngestSampleResponse struct {
	ID string `json:"id"`
}

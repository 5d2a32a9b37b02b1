package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"crowdWatch/internal/domain"
	"crowdWatch/internal/geo"
	"crowdWatch/pkg/e"
)

// ZoneService writes zone definitions and keeps the cycle's zone cache honest.
type ZoneService struct {
	zones  ZoneWriter
	cache  ZoneCacheInvalidator
	logger *slog.Logger
}

// NewZoneService accepts a nil cache for deployments without one.
func NewZoneService(zones ZoneWriter, cache ZoneCacheInvalidator, logger *slog.Logger) *ZoneService {
	return &ZoneService{zones: zones, cache: cache, logger: logger}
}

func (s *ZoneService) Upsert(ctx context.Context, id string, req domain.UpsertZoneRequest) (*domain.Zone, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("zone id: %w", e.ErrInvalidInput)
	}
	if _, ok := geo.NewPolygon(req.Boundary); !ok {
		return nil, fmt.Errorf("zone %s boundary is not a usable polygon: %w", id, e.ErrInvalidInput)
	}

	zone := domain.Zone{
		ID:       id,
		Name:     req.Name,
		EventID:  req.EventID,
		Boundary: req.Boundary,
		Capacity: req.Capacity,
	}
	if err := s.zones.UpsertZone(ctx, zone); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			// entries still expire after the cache ttl
			s.logger.Warn("zone cache invalidation failed", slog.String("zone_id", id), slog.Any("error", err))
		}
	}

	s.logger.Info("zone upserted",
		slog.String("zone_id", id),
		slog.String("event_id", zone.EventID),
		slog.Int("vertices", len(zone.Boundary)),
		slog.Int("capacity", zone.Capacity),
	)
	return &zone, nil
}

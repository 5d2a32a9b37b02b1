package service

import (
	"context"
	"log/slog"
	"time"

	"crowdWatch/internal/domain"
	"crowdWatch/pkg/e"

	"github.com/google/uuid"
)

// SampleService accepts location pings and serves current zone readings.
type SampleService struct {
	samples  SampleRepository
	readings ReadingRepository
	logger   *slog.Logger
	now      func() time.Time
}

func NewSampleService(samples SampleRepository, readings ReadingRepository, logger *slog.Logger) *SampleService {
	return &SampleService{
		samples:  samples,
		readings: readings,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *SampleService) Ingest(ctx context.Context, req domain.IngestSampleRequest) (*domain.IngestSampleResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, e.ErrInvalidUserID
	}

	ts := s.now()
	if req.Timestamp != nil && !req.Timestamp.IsZero() {
		ts = req.Timestamp.UTC()
	}

	sample := domain.LocationSample{
		ID:        uuid.New(),
		UserID:    userID,
		Latitude:  req.Lat,
		Longitude: req.Lng,
		Timestamp: ts,
	}
	if err := s.samples.InsertSample(ctx, &sample); err != nil {
		return nil, err
	}

	s.logger.Debug("location sample stored", slog.String("sample_id", sample.ID.String()))
	return &domain.IngestSampleResponse{ID: sample.ID.String()}, nil
}

func (s *SampleService) GetZoneDensity(ctx context.Context, zoneID string) (*domain.DensityReading, error) {
	return s.readings.GetReading(ctx, zoneID)
}

func (s *SampleService) ListEventDensity(ctx context.Context, eventID string) ([]domain.DensityReading, error) {
	return s.readings.ListReadingsByEvent(ctx, eventID)
}

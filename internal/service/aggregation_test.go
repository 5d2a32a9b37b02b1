package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"crowdWatch/internal/density"
	"crowdWatch/internal/domain"
	"crowdWatch/internal/service"
	mock_service "crowdWatch/internal/service/mocks"
)

type aggregatorDeps struct {
	samples  *mock_service.MockSampleRepository
	zones    *mock_service.MockZoneSource
	readings *mock_service.MockReadingRepository
	alerts   *mock_service.MockAlertEvaluator
}

func newAggregator(ctrl *gomock.Controller) (*service.Aggregator, aggregatorDeps) {
	d := aggregatorDeps{
		samples:  mock_service.NewMockSampleRepository(ctrl),
		zones:    mock_service.NewMockZoneSource(ctrl),
		readings: mock_service.NewMockReadingRepository(ctrl),
		alerts:   mock_service.NewMockAlertEvaluator(ctrl),
	}
	a := service.NewAggregator(d.samples, d.zones, d.readings, d.alerts,
		density.NewEvaluator(density.DefaultConfig()), service.DefaultAggregatorConfig(), newTestLogger())
	return a, d
}

func sampleAt(lat, lng float64) domain.LocationSample {
	return domain.LocationSample{ID: uuid.New(), UserID: uuid.New(), Latitude: lat, Longitude: lng, Timestamp: time.Now()}
}

func TestAggregator_NoSamplesSkipsToCleanup(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, d := newAggregator(ctrl)

	d.samples.EXPECT().SamplesSince(gomock.Any(), gomock.Any()).Return(nil, nil)
	d.samples.EXPECT().DeleteSamplesBefore(gomock.Any(), gomock.Any(), 400).Return(int64(7), nil)

	report, err := a.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Outcome != domain.CycleNoSamples || report.SamplesDeleted != 7 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestAggregator_NoZonesSkipsToCleanup(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, d := newAggregator(ctrl)

	d.samples.EXPECT().SamplesSince(gomock.Any(), gomock.Any()).Return([]domain.LocationSample{sampleAt(0, 0)}, nil)
	d.zones.EXPECT().ListZones(gomock.Any()).Return(nil, nil)
	d.samples.EXPECT().DeleteSamplesBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

	report, err := a.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Outcome != domain.CycleNoZonesConfigured {
		t.Fatalf("unexpected outcome: %s", report.Outcome)
	}
}

func TestAggregator_CompletedCycle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, d := newAggregator(ctrl)

	zones := []domain.Zone{
		{
			ID: "north", Name: "North Stand", EventID: "final", Capacity: 100,
			Boundary: []domain.LatLng{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 0.001}, {Lat: 0.001, Lng: 0.001}, {Lat: 0.001, Lng: 0}},
		},
		{ID: "broken", Name: "Broken", EventID: "final", Capacity: 0},
	}
	samples := []domain.LocationSample{
		sampleAt(0.0005, 0.0005),
		sampleAt(0.0002, 0.0008),
		sampleAt(0.0009, 0.0001),
		sampleAt(1, 1),
	}

	d.samples.EXPECT().SamplesSince(gomock.Any(), gomock.Any()).Return(samples, nil)
	d.zones.EXPECT().ListZones(gomock.Any()).Return(zones, nil)

	var stored []domain.DensityReading
	d.readings.EXPECT().
		UpsertReadings(gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(_ context.Context, rs []domain.DensityReading) error {
			stored = append(stored, rs...)
			return nil
		})

	d.alerts.EXPECT().EvaluateReading(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r domain.DensityReading) (*domain.Alert, error) {
			if r.ZoneID == "north" {
				return &domain.Alert{ID: uuid.New()}, nil
			}
			return nil, errors.New("alert store down")
		}).
		Times(2)

	d.samples.EXPECT().DeleteSamplesBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

	report, err := a.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Outcome != domain.CycleCompleted {
		t.Fatalf("unexpected outcome: %s", report.Outcome)
	}
	if report.Samples != 4 || report.Unassigned != 1 || report.Readings != 2 || report.AlertsCreated != 1 || report.AlertErrors != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}

	north, broken := stored[0], stored[1]
	if north.CurrentPopulation != 3 || north.Status != domain.DensitySafe || north.DensityValue <= 0 {
		t.Fatalf("unexpected north reading: %+v", north)
	}
	// Missing boundary and capacity fall back to 1 * 0.5 sqm.
	if broken.CurrentPopulation != 0 || broken.Capacity != 1 || broken.DensityValue != 0 {
		t.Fatalf("unexpected broken reading: %+v", broken)
	}
}

func TestAggregator_FetchFailureAbortsCycle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, d := newAggregator(ctrl)

	wantErr := errors.New("store unavailable")
	d.samples.EXPECT().SamplesSince(gomock.Any(), gomock.Any()).Return(nil, wantErr)

	report, err := a.RunCycle(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
	if report.Outcome != domain.CycleFailed {
		t.Fatalf("unexpected outcome: %s", report.Outcome)
	}
}

func TestAggregator_PersistFailureSkipsAlerting(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, d := newAggregator(ctrl)

	d.samples.EXPECT().SamplesSince(gomock.Any(), gomock.Any()).Return([]domain.LocationSample{sampleAt(0, 0)}, nil)
	d.zones.EXPECT().ListZones(gomock.Any()).Return([]domain.Zone{{ID: "z", Capacity: 10}}, nil)
	d.readings.EXPECT().UpsertReadings(gomock.Any(), gomock.Any()).Return(errors.New("commit failed"))

	report, err := a.RunCycle(context.Background())
	if err == nil || report.Outcome != domain.CycleFailed {
		t.Fatalf("expected failed cycle, got %+v, %v", report, err)
	}
}

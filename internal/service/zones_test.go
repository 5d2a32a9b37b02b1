package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"crowdWatch/internal/domain"
	"crowdWatch/internal/service"
	mock_service "crowdWatch/internal/service/mocks"
	"crowdWatch/pkg/e"
)

func squareZoneRequest() domain.UpsertZoneRequest {
	return domain.UpsertZoneRequest{
		Name:    "North Gate",
		EventID: "ev1",
		Boundary: []domain.LatLng{
			{Lat: 0, Lng: 0}, {Lat: 0, Lng: 0.001}, {Lat: 0.001, Lng: 0.001}, {Lat: 0.001, Lng: 0},
		},
		Capacity: 500,
	}
}

func TestZoneService_Upsert_WritesAndInvalidates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_service.NewMockZoneWriter(ctrl)
	cache := mock_service.NewMockZoneCacheInvalidator(ctrl)
	svc := service.NewZoneService(zones, cache, newTestLogger())

	gomock.InOrder(
		zones.EXPECT().UpsertZone(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, z domain.Zone) error {
				if z.ID != "z1" || z.Capacity != 500 || len(z.Boundary) != 4 {
					t.Errorf("unexpected zone: %+v", z)
				}
				return nil
			}).Times(1),
		cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down")).Times(1),
	)

	zone, err := svc.Upsert(context.Background(), "z1", squareZoneRequest())
	if err != nil {
		t.Fatalf("cache failure must not fail the write: %v", err)
	}
	if zone.Name != "North Gate" {
		t.Fatalf("unexpected zone %+v", zone)
	}
}

func TestZoneService_Upsert_RejectsBadInput(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewZoneService(mock_service.NewMockZoneWriter(ctrl), nil, newTestLogger())

	req := squareZoneRequest()
	req.Boundary = req.Boundary[:2]

	if _, err := svc.Upsert(context.Background(), "z1", req); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for two vertices, got %v", err)
	}
	if _, err := svc.Upsert(context.Background(), " ", squareZoneRequest()); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty id, got %v", err)
	}
}

func TestZoneService_Upsert_StoreErrorSkipsInvalidation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := mock_service.NewMockZoneWriter(ctrl)
	svc := service.NewZoneService(zones, mock_service.NewMockZoneCacheInvalidator(ctrl), newTestLogger())

	zones.EXPECT().UpsertZone(gomock.Any(), gomock.Any()).Return(e.ErrInternal).Times(1)

	if _, err := svc.Upsert(context.Background(), "z1", squareZoneRequest()); !errors.Is(err, e.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

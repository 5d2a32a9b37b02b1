package public_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"crowdWatch/internal/api/handlers/http/public"
	mock_public "crowdWatch/internal/api/handlers/http/public/mocks"
	"crowdWatch/internal/domain"
	"crowdWatch/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func newHandler(ctrl *gomock.Controller) (*public.Handler, *mock_public.MockSampleIngester, *mock_public.MockDensityReader) {
	samples := mock_public.NewMockSampleIngester(ctrl)
	density := mock_public.NewMockDensityReader(ctrl)
	return public.NewHandler(newTestLogger(), samples, density), samples, density
}

const userID = "00000000-0000-0000-0000-000000000001"

func TestIngestSample_Created(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, samples, _ := newHandler(ctrl)

	reqBody := `{"user_id":"` + userID + `","lat":55.75,"lng":37.61}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/location/samples", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	samples.EXPECT().
		Ingest(gomock.Any(), domain.IngestSampleRequest{UserID: userID, Lat: 55.75, Lng: 37.61}).
		Return(&domain.IngestSampleResponse{ID: "s1"}, nil).
		Times(1)

	h.IngestSample(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.IngestSampleResponse](t, rr)
	if got.ID != "s1" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestIngestSample_BadRequests_400(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"malformed", `{bad json`},
		{"unknown_field", `{"user_id":"` + userID + `","lat":1,"lng":1,"extra":true}`},
		{"trailing", `{"user_id":"` + userID + `","lat":1,"lng":1}{}`},
		{"lat_out_of_range", `{"user_id":"` + userID + `","lat":91,"lng":1}`},
		{"user_not_uuid", `{"user_id":"bob","lat":1,"lng":1}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, _, _ := newHandler(ctrl)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/location/samples", bytes.NewBufferString(tc.body))
			rr := httptest.NewRecorder()

			h.IngestSample(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestIngestSample_ServiceError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, samples, _ := newHandler(ctrl)

	reqBody := `{"user_id":"` + userID + `","lat":55.75,"lng":37.61}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/location/samples", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	samples.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	h.IngestSample(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]string](t, rr)
	if got["error"] != "internal error" {
		t.Fatalf("internal details leaked: %+v", got)
	}
}

func TestZoneDensity_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, density := newHandler(ctrl)

	want := &domain.DensityReading{ZoneID: "z1", CurrentPopulation: 230, Capacity: 100, DensityValue: 4.6, Status: domain.DensityCritical}
	density.EXPECT().GetZoneDensity(gomock.Any(), "z1").Return(want, nil).Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/zones/z1/density", nil), "id", "z1")
	rr := httptest.NewRecorder()

	h.ZoneDensity(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.DensityReading](t, rr)
	if got.ZoneID != "z1" || got.Status != domain.DensityCritical || got.DensityValue != 4.6 {
		t.Fatalf("unexpected reading: %+v", got)
	}
}

func TestZoneDensity_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, density := newHandler(ctrl)
	density.EXPECT().GetZoneDensity(gomock.Any(), "missing").Return(nil, e.ErrNotFound).Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/zones/missing/density", nil), "id", "missing")
	rr := httptest.NewRecorder()

	h.ZoneDensity(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestEventDensity_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, density := newHandler(ctrl)
	density.EXPECT().
		ListEventDensity(gomock.Any(), "ev1").
		Return([]domain.DensityReading{{ZoneID: "a"}, {ZoneID: "b"}}, nil).
		Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/events/ev1/density", nil), "id", "ev1")
	rr := httptest.NewRecorder()

	h.EventDensity(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[struct {
		EventID string                  `json:"event_id"`
		Zones   []domain.DensityReading `json:"zones"`
	}](t, rr)
	if got.EventID != "ev1" || len(got.Zones) != 2 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestEventDensity_MissingID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newHandler(ctrl)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/events//density", nil), "id", " ")
	rr := httptest.NewRecorder()

	h.EventDensity(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

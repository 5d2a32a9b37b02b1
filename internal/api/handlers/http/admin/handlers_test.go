package admin_test

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
	"github.com/google/uuid"

	"crowdWatch/internal/api/handlers/http/admin"
	mock_admin "crowdWatch/internal/api/handlers/http/admin/mocks"
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

type deps struct {
	alerts    *mock_admin.MockAlertCreator
	incidents *mock_admin.MockIncidentManager
	users     *mock_admin.MockUserManager
	zones     *mock_admin.MockZoneManager
	cycles    *mock_admin.MockCycleRunner
}

func newHandler(ctrl *gomock.Controller) (*admin.Handler, deps) {
	d := deps{
		alerts:    mock_admin.NewMockAlertCreator(ctrl),
		incidents: mock_admin.NewMockIncidentManager(ctrl),
		users:     mock_admin.NewMockUserManager(ctrl),
		zones:     mock_admin.NewMockZoneManager(ctrl),
		cycles:    mock_admin.NewMockCycleRunner(ctrl),
	}
	return admin.NewHandler(newTestLogger(), d.alerts, d.incidents, d.users, d.zones, d.cycles), d
}

func TestAdminAlertCreate_Created(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, d := newHandler(ctrl)

	reqBody := `{"message":"Gate B closed","severity":"warning","target_roles":["fan","security"],"created_by":"op-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/alerts", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	wantID := uuid.New()
	d.alerts.EXPECT().
		CreateAlert(gomock.Any(), domain.CreateAlertRequest{
			Message:     "Gate B closed",
			Severity:    domain.SeverityWarning,
			TargetRoles: []string{"fan", "security"},
			CreatedBy:   "op-1",
		}).
		Return(&domain.Alert{ID: wantID, Severity: domain.SeverityWarning}, domain.BroadcastReport{Sent: 2}, nil).
		Times(1)

	h.AdminAlertCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[struct {
		Alert domain.Alert           `json:"alert"`
		Push  domain.BroadcastReport `json:"push"`
	}](t, rr)
	if got.Alert.ID != wantID || got.Push.Sent != 2 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestAdminAlertCreate_ValidationErrors_400(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"malformed", `{bad json`},
		{"unknown_role", `{"message":"m","severity":"warning","target_roles":["Fan"],"created_by":"op"}`},
		{"no_roles", `{"message":"m","severity":"warning","target_roles":[],"created_by":"op"}`},
		{"bad_severity", `{"message":"m","severity":"panic","target_roles":["fan"],"created_by":"op"}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, _ := newHandler(ctrl)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/alerts", bytes.NewBufferString(tc.body))
			rr := httptest.NewRecorder()

			h.AdminAlertCreate(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAdminAlertCreate_SystemCreator_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, d := newHandler(ctrl)

	reqBody := `{"message":"m","severity":"info","target_roles":["fan"],"created_by":"system"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/alerts", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	d.alerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).
		Return(nil, domain.BroadcastReport{}, e.ErrInvalidInput).Times(1)

	h.AdminAlertCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminIncidentCreate_Created(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, d := newHandler(ctrl)

	reqBody := `{"type":"medical","severity":"critical","description":"collapse at gate 4"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/incidents", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	id := uuid.New()
	d.incidents.EXPECT().
		Create(gomock.Any(), domain.CreateIncidentRequest{
			Type:        domain.IncidentMedical,
			Severity:    domain.IncidentCritical,
			Description: "collapse at gate 4",
		}).
		Return(&domain.Incident{ID: id, Type: domain.IncidentMedical, Severity: domain.IncidentCritical}, domain.BroadcastReport{Sent: 3}, nil).
		Times(1)

	h.AdminIncidentCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestAdminIncidentCreate_ServiceError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, d := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/incidents", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()

	d.incidents.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.BroadcastReport{}, errors.New("boom")).Times(1)

	h.AdminIncidentCreate(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
}

func TestAdminIncidentStatus(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	cases := []struct {
		name    string
		id      string
		body    string
		mockErr error
		expect  bool
		want    int
	}{
		{"ok", id.String(), `{"status":"dispatched"}`, nil, true, http.StatusOK},
		{"bad_id", "nope", `{"status":"dispatched"}`, nil, false, http.StatusBadRequest},
		{"bad_status", id.String(), `{"status":"closed"}`, nil, false, http.StatusBadRequest},
		{"not_found", id.String(), `{"status":"resolved"}`, e.ErrNotFound, true, http.StatusNotFound},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, d := newHandler(ctrl)
			if tc.expect {
				call := d.incidents.EXPECT().UpdateStatus(gomock.Any(), id, gomock.Any()).Times(1)
				if tc.mockErr != nil {
					call.Return(nil, domain.BroadcastReport{}, tc.mockErr)
				} else {
					call.Return(&domain.Incident{ID: id, Status: domain.IncidentDispatched}, domain.BroadcastReport{Sent: 2}, nil)
				}
			}

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/incidents/"+tc.id+"/status", bytes.NewBufferString(tc.body))
			req = addChiURLParam(req, "id", tc.id)
			rr := httptest.NewRecorder()

			h.AdminIncidentStatus(rr, req)

			if rr.Code != tc.want {
				t.Fatalf("expected %d got %d body=%s", tc.want, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAdminZoneUpsert_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, d := newHandler(ctrl)

	reqBody := `{"name":"North","event_id":"ev1","capacity":100,"boundary":[{"lat":0,"lng":0},{"lat":0,"lng":1},{"lat":1,"lng":1}]}`
	req := addChiURLParam(httptest.NewRequest(http.MethodPut, "/api/v1/admin/zones/z1", bytes.NewBufferString(reqBody)), "id", "z1")
	rr := httptest.NewRecorder()

	d.zones.EXPECT().
		Upsert(gomock.Any(), "z1", gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, r domain.UpsertZoneRequest) (*domain.Zone, error) {
			return &domain.Zone{ID: id, Name: r.Name, EventID: r.EventID, Boundary: r.Boundary, Capacity: r.Capacity}, nil
		}).
		Times(1)

	h.AdminZoneUpsert(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.Zone](t, rr)
	if got.ID != "z1" || len(got.Boundary) != 3 {
		t.Fatalf("unexpected zone: %+v", got)
	}
}

func TestAdminZoneUpsert_BadVertex_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newHandler(ctrl)

	reqBody := `{"name":"North","event_id":"ev1","capacity":100,"boundary":[{"lat":95,"lng":0},{"lat":0,"lng":1},{"lat":1,"lng":1}]}`
	req := addChiURLParam(httptest.NewRequest(http.MethodPut, "/api/v1/admin/zones/z1", bytes.NewBufferString(reqBody)), "id", "z1")
	rr := httptest.NewRecorder()

	h.AdminZoneUpsert(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminUserBootstrap_EmptyBody_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, d := newHandler(ctrl)

	d.users.EXPECT().
		Bootstrap(gomock.Any(), "u1", domain.BootstrapUserRequest{}).
		Return(domain.BootstrapResult{UserID: "u1", Role: domain.RoleFan, State: domain.ProfileDefaulted}, nil).
		Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodPost, "/api/v1/admin/users/u1/bootstrap", nil), "id", "u1")
	rr := httptest.NewRecorder()

	h.AdminUserBootstrap(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.BootstrapResult](t, rr)
	if got.State != domain.ProfileDefaulted || got.Role != domain.RoleFan {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestAdminUserBootstrap_WithBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, d := newHandler(ctrl)

	d.users.EXPECT().
		Bootstrap(gomock.Any(), "u1", domain.BootstrapUserRequest{Email: "a@b.io", DisplayName: "Ann"}).
		Return(domain.BootstrapResult{UserID: "u1", Role: domain.RoleSecurity, State: domain.ProfileResolved}, nil).
		Times(1)

	body := bytes.NewBufferString(`{"email":"a@b.io","display_name":"Ann"}`)
	req := addChiURLParam(httptest.NewRequest(http.MethodPost, "/api/v1/admin/users/u1/bootstrap", body), "id", "u1")
	rr := httptest.NewRecorder()

	h.AdminUserBootstrap(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestAdminUserNotifications_Limit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, d := newHandler(ctrl)

	d.users.EXPECT().
		Notifications(gomock.Any(), "u1", 10).
		Return([]domain.NotificationRecord{{UserID: "u1", Title: "Welcome to CrowdWatch!"}}, nil).
		Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/admin/users/u1/notifications?limit=10", nil), "id", "u1")
	rr := httptest.NewRecorder()

	h.AdminUserNotifications(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestAdminAggregate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, d := newHandler(ctrl)

	d.cycles.EXPECT().RunCycle(gomock.Any()).
		Return(domain.CycleReport{Outcome: domain.CycleCompleted, Readings: 4, AlertsCreated: 1}, nil).
		Times(1)

	rr := httptest.NewRecorder()
	h.AdminAggregate(rr, httptest.NewRequest(http.MethodPost, "/api/v1/admin/aggregate", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.CycleReport](t, rr)
	if got.Outcome != domain.CycleCompleted || got.Readings != 4 {
		t.Fatalf("unexpected report: %+v", got)
	}

	d.cycles.EXPECT().RunCycle(gomock.Any()).
		Return(domain.CycleReport{Outcome: domain.CycleFailed}, e.ErrInternal).
		Times(1)

	rr = httptest.NewRecorder()
	h.AdminAggregate(rr, httptest.NewRequest(http.MethodPost, "/api/v1/admin/aggregate", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
}

package system_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"crowdWatch/internal/api/handlers/http/system"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestSystemReady(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cases := []struct {
		name  string
		redis error
		want  int
	}{
		{"up", nil, http.StatusOK},
		{"redis_down", errors.New("conn refused"), http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := system.NewHandler(logger, map[string]system.Pinger{
				"postgres": pingFunc(func(context.Context) error { return nil }),
				"redis":    pingFunc(func(context.Context) error { return tc.redis }),
			})
			rr := httptest.NewRecorder()
			h.SystemReady(rr, httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil))
			if rr.Code != tc.want {
				t.Fatalf("expected %d got %d", tc.want, rr.Code)
			}
		})
	}
}

func TestSystemHealth(t *testing.T) {
	t.Parallel()

	h := system.NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	rr := httptest.NewRecorder()
	h.SystemHealth(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("unexpected health response %d %q", rr.Code, rr.Body.String())
	}
}

package middleware_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crowdWatch/internal/middleware"
	"crowdWatch/pkg/e"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAPIKeyMiddleware(t *testing.T) {
	t.Parallel()

	h := middleware.APIKeyMiddleware("secret")(okHandler())

	cases := []struct {
		name string
		key  string
		want int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", "nope", http.StatusUnauthorized},
		{"ok", "secret", http.StatusNoContent},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/admin", nil)
			if tc.key != "" {
				req.Header.Set(middleware.APIKeyHeader, tc.key)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			require.Equal(t, tc.want, rr.Code)
		})
	}
}

func TestLimit_RejectsAfterBurst(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := middleware.Limit(0.001, 2, time.Minute, logger)(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/ingest", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	require.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodPost, "/ingest", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, other)
	require.Equal(t, http.StatusNoContent, rr.Code)
}

type bindTarget struct {
	Lat  float64 `json:"lat" validate:"lat"`
	Name string  `json:"name" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"ok", `{"lat":10,"name":"a"}`, false},
		{"malformed", `{bad`, true},
		{"unknown_field", `{"lat":10,"name":"a","x":1}`, true},
		{"trailing", `{"lat":10,"name":"a"}{}`, true},
		{"invalid", `{"lat":100,"name":"a"}`, true},
		{"missing_required", `{"lat":10}`, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.body))
			got, err := middleware.DecodeJSON[bindTarget](httptest.NewRecorder(), req)
			if tc.wantErr {
				require.True(t, errors.Is(err, e.ErrInvalidInput), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, bindTarget{Lat: 10, Name: "a"}, got)
		})
	}
}

package system

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Pinger checks one backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	logger *slog.Logger
	stores map[string]Pinger
}

// NewHandler takes the backing stores by name; readiness fails if any is down.
func NewHandler(logger *slog.Logger, stores map[string]Pinger) *Handler {
	return &Handler{logger: logger, stores: stores}
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// SystemReady reports 503 while any store is unreachable.
func (h *Handler) SystemReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	body := make(map[string]string, len(h.stores))
	for name, store := range h.stores {
		if err := store.Ping(ctx); err != nil {
			h.logger.Warn("readiness check failed", slog.String("store", name), slog.Any("error", err))
			status = http.StatusServiceUnavailable
			body[name] = "down"
			continue
		}
		body[name] = "up"
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

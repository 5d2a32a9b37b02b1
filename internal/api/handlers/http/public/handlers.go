package public

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"crowdWatch/internal/domain"
	"crowdWatch/internal/middleware"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type SampleIngester interface {
	Ingest(ctx context.Context, req domain.IngestSampleRequest) (*domain.IngestSampleResponse, error)
}

type DensityReader interface {
	GetZoneDensity(ctx context.Context, zoneID string) (*domain.DensityReading, error)
	ListEventDensity(ctx context.Context, eventID string) ([]domain.DensityReading, error)
}

type Handler struct {
	logger  *slog.Logger
	Samples SampleIngester
	Density DensityReader
}

func NewHandler(logger *slog.Logger, samples SampleIngester, density DensityReader) *Handler {
	return &Handler{
		logger:  logger,
		Samples: samples,
		Density: density,
	}
}

func (h *Handler) IngestSample(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	req, err := middleware.DecodeJSON[domain.IngestSampleRequest](w, r)
	if err != nil {
		l.Warn("invalid sample", slog.String("error", err.Error()))
		h.handleError(w, r, err)
		return
	}

	resp, err := h.Samples.Ingest(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) ZoneDensity(w http.ResponseWriter, r *http.Request) {
	zoneID := strings.TrimSpace(chi.URLParam(r, "id"))
	if zoneID == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "zone id required"})
		return
	}

	reading, err := h.Density.GetZoneDensity(r.Context(), zoneID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, reading)
}

func (h *Handler) EventDensity(w http.ResponseWriter, r *http.Request) {
	eventID := strings.TrimSpace(chi.URLParam(r, "id"))
	if eventID == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "event id required"})
		return
	}

	readings, err := h.Density.ListEventDensity(r.Context(), eventID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"event_id": eventID,
		"zones":    readings,
	})
}

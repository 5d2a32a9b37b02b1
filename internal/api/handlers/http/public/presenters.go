package public

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"crowdWatch/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var msg string
	switch {
	case errors.Is(err, e.ErrNotFound):
		status, msg = http.StatusNotFound, "not found"
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidCoordinates), errors.Is(err, e.ErrInvalidUserID):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, e.ErrUniqueViolation), errors.Is(err, e.ErrConflict):
		status, msg = http.StatusConflict, "conflict"
	case errors.Is(err, e.ErrDeadline):
		status, msg = http.StatusGatewayTimeout, "timeout"
	default:
		status, msg = http.StatusInternalServerError, "internal error"
	}

	if status >= http.StatusInternalServerError {
		h.log(r).Error("handler error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}

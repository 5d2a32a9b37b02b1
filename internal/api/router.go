package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crowdWatch/internal/api/handlers/http/admin"
	"crowdWatch/internal/api/handlers/http/public"
	"crowdWatch/internal/api/handlers/http/system"
	"crowdWatch/internal/config"
	"crowdWatch/internal/middleware"
	"crowdWatch/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, stores map[string]system.Pinger) *Server {
	adminHandler := admin.NewHandler(logger, svc.Alerts, svc.Incidents, svc.Users, svc.Zones, svc.Aggregator)
	publicHandler := public.NewHandler(logger, svc.Samples, svc.Samples)
	systemHandler := system.NewHandler(logger, stores)

	r := InitRouter(cfg, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(middleware.Metrics)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))

			ar.Post("/alerts", adminHandler.AdminAlertCreate)
			ar.Post("/aggregate", adminHandler.AdminAggregate)
			ar.Put("/zones/{id}", adminHandler.AdminZoneUpsert)

			ar.Route("/incidents", func(ir chi.Router) {
				ir.Post("/", adminHandler.AdminIncidentCreate)
				ir.Patch("/{id}/status", adminHandler.AdminIncidentStatus)
			})

			ar.Route("/users/{id}", func(ur chi.Router) {
				ur.Post("/bootstrap", adminHandler.AdminUserBootstrap)
				ur.Get("/notifications", adminHandler.AdminUserNotifications)
			})
		})

		// PUBLIC
		api.Route("/location", func(pr chi.Router) {
			pr.Use(middleware.Limit(cfg.Http.IngestRPS, cfg.Http.IngestBurst, 5*time.Minute, logger))
			pr.Post("/samples", publicHandler.IngestSample)
		})
		api.Get("/zones/{id}/density", publicHandler.ZoneDensity)
		api.Get("/events/{id}/density", publicHandler.EventDensity)

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
		api.Get("/ready", systemHandler.SystemReady)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}

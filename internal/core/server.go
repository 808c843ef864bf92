// Package core provides the API chassis for the huntcast service: a chi
// router with the cross-cutting middleware chain (security, logging,
// metrics, error handling) applied before requests reach domain handlers.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"huntcast/internal/config"
)

// MetricsCollector records API telemetry. The Prometheus implementation in
// this package is the default; tests inject a no-op.
type MetricsCollector interface {
	RecordRequest(method, endpoint, status string, duration time.Duration)
}

// HealthProbe is a subsystem health check (journal database, weather
// upstream). Probes must respect the context deadline.
type HealthProbe interface {
	Name() string
	Check(ctx context.Context) error
}

// Server encapsulates all dependencies for the huntcast API, allowing for
// easy injection during testing.
type Server struct {
	Config    *config.Config
	Logger    *slog.Logger
	Validator *Validator
	Metrics   MetricsCollector

	// HealthProbes are executed concurrently by the /health endpoint.
	HealthProbes []HealthProbe

	// V1RouteRegistrars are populated by the application entry point. This
	// indirection avoids import cycles between core and handler packages.
	V1RouteRegistrars []func(chi.Router)

	// MetricsHandler serves GET /metrics when set (Prometheus exposition).
	MetricsHandler http.Handler

	router *chi.Mux
}

// NewServer initializes dependencies and prepares the server for route
// mounting. The caller is responsible for mounting routes (via MountRoutes)
// after construction; the separation lets tests customize registration.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	return &Server{
		Config:    cfg,
		Logger:    logger,
		Validator: NewValidator(logger),
		Metrics:   noopMetrics{},
		router:    chi.NewRouter(),
	}, nil
}

// Handler returns the http.Handler interface for the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Router returns the underlying chi.Mux for route registration in tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Shutdown performs graceful termination of server-owned resources.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("server shutdown initiated")
	for _, probe := range s.HealthProbes {
		if closer, ok := probe.(interface{ Close() }); ok {
			closer.Close()
		}
	}
	s.Logger.Info("server shutdown complete")
	return nil
}

// noopMetrics satisfies MetricsCollector when no collector is wired.
type noopMetrics struct{}

func (noopMetrics) RecordRequest(string, string, string, time.Duration) {}

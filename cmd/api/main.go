// Package main is the entry point for the huntcast API server.
//
// It loads configuration, builds the species/location catalog (with optional
// YAML overrides), wires the scoring engine, weather provider, outlook
// planner, and journal service into the HTTP chassis, and starts listening.
//
// Graceful shutdown is handled via OS signal interception (SIGINT, SIGTERM).
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"huntcast/internal/api/handlers"
	"huntcast/internal/config"
	"huntcast/internal/core"
	"huntcast/internal/journal"
	"huntcast/internal/outlook"
	"huntcast/internal/profiles"
	"huntcast/internal/scoring"
	"huntcast/internal/weather"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the startup lifecycle so main() can cleanly exit on error.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	logger.Info("huntcast API starting",
		"environment", cfg.Environment,
		"version", cfg.Build.Version,
		"commit", cfg.Build.Commit,
		"port", cfg.Server.Port,
	)

	// Catalog tables. Any configuration error here is fatal: the process
	// must not serve advice from a half-loaded catalog.
	override, err := profiles.LoadOverride(cfg.Profiles.OverridePath)
	if err != nil {
		return fmt.Errorf("loading profile overrides: %w", err)
	}
	store, err := profiles.NewStore(override)
	if err != nil {
		return fmt.Errorf("building profile catalog: %w", err)
	}

	engine := scoring.NewEngine(store, store)
	provider := weather.NewProvider(cfg.Weather)
	planner := outlook.NewPlanner(engine, provider, store, cfg.Outlook.MaxDays, cfg.Outlook.Concurrency)

	srv, err := core.NewServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	metrics := core.NewPrometheusMetrics(cfg.Service)
	srv.Metrics = metrics
	srv.MetricsHandler = metrics.Handler()

	// Journal is optional: without a DATABASE_URL the endpoints report 503.
	var journalSvc handlers.JournalService
	if cfg.Database.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := journal.NewPool(ctx, cfg.Database)
		cancel()
		if err != nil {
			return fmt.Errorf("connecting journal database: %w", err)
		}
		journalSvc = journal.NewService(journal.NewPGRepository(pool), store)
		srv.HealthProbes = append(srv.HealthProbes, journal.NewProbe(pool))
		logger.Info("journal feature enabled")
	} else {
		logger.Info("journal feature disabled; no DATABASE_URL configured")
	}

	evaluateHandler := handlers.NewEvaluateHandler(engine, provider, srv.Validator, logger)
	catalogHandler := handlers.NewCatalogHandler(store)
	outlookHandler := handlers.NewOutlookHandler(planner, 3)
	journalHandler := handlers.NewJournalHandler(journalSvc, srv.Validator, logger)

	srv.V1RouteRegistrars = append(srv.V1RouteRegistrars,
		evaluateHandler.RegisterRoutes,
		catalogHandler.RegisterRoutes,
		outlookHandler.RegisterRoutes,
		journalHandler.RegisterRoutes,
	)

	srv.MountRoutes()

	return runHTTPServer(srv, cfg, logger)
}

// runHTTPServer starts the server in standard HTTP mode with graceful shutdown.
func runHTTPServer(srv *core.Server, cfg *config.Config, logger *slog.Logger) error {
	addr := ":" + cfg.Server.Port

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-shutdown:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	logger.Info("initiating graceful shutdown")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server resource shutdown error", "error", err)
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped cleanly")
	return nil
}

// newLogger creates a structured slog.Logger configured for the given level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler)
}

package main

import (
	"log"
	"log/slog"

	"starluck/internal/chart"
	"starluck/internal/config"
	"starluck/internal/ephemeris"
	"starluck/internal/observability"
	"starluck/internal/transits"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	opts, err := cfg.EphemerisOptions()
	if err != nil {
		log.Fatalf("Invalid ephemeris config: %v", err)
	}
	backend, err := ephemeris.Open(opts, logger)
	if err != nil {
		logger.Error("failed to open ephemeris backend", "error", err)
		log.Fatal(err)
	}
	defer func() {
		_ = backend.Close()
	}()

	observability.RegisterMetrics()
	if backend.Cache != nil {
		observability.RegisterCache(backend.Cache)
	}

	charts, err := chart.NewChartService(backend, logger)
	if err != nil {
		logger.Error("failed to create chart service", "error", err)
		log.Fatal(err)
	}

	app, err := NewApp(cfg, charts, transits.NewTransitService(backend, logger), backend.Name(), logger)
	if err != nil {
		logger.Error("failed to create app", "error", err)
		log.Fatal(err)
	}

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr(), "ephemeris", backend.Name())
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"starluck/internal/config"
	"starluck/internal/ephemeris"
	"starluck/internal/providers/horizons"
)

func main() {
	dbPath := flag.String("db", "", "ephemeris table path (defaults to ephemeris.dataPath)")
	start := flag.String("start", "", "first date, YYYY-MM-DD (UTC)")
	stop := flag.String("stop", "", "last date, YYYY-MM-DD (UTC)")
	step := flag.Duration("step", 24*time.Hour, "row spacing, whole minutes")
	parallel := flag.Int("parallel", 3, "concurrent Horizons requests")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	path := *dbPath
	if path == "" {
		path = cfg.Ephemeris.DataPath
	}
	if path == "" {
		log.Fatal("-db or ephemeris.dataPath is required")
	}

	window, err := parseWindow(*start, *stop, *step)
	if err != nil {
		log.Fatal(err)
	}

	table, err := ephemeris.OpenTable(path)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = table.Close()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	gen := &generator{
		client:   horizons.NewClient(),
		table:    table,
		parallel: *parallel,
		logger:   logger.With("component", "ephemgen"),
	}
	if err := gen.Run(ctx, window); err != nil {
		logger.Error("ephemeris generation failed", "db", path, "error", err)
		os.Exit(1)
	}
	logger.Info("ephemeris table written", "db", path, "start", window.Start, "stop", window.Stop)
}

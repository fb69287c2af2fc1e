package main

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"starluck/internal/chart"
	"starluck/internal/config"
	"starluck/internal/houses"
	"starluck/internal/observability"
	"starluck/internal/transits"
)

const apiVersion = "1.0.0"

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	api            huma.API
	logger         *slog.Logger
	cfg            *config.Config
	chartService   chart.Service
	transitService transits.Service
	backend        string
	defaultSystem  houses.System
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, charts chart.Service, transitSvc transits.Service, backend string, logger *slog.Logger) (*App, error) {
	defaultSystem, err := cfg.DefaultHouseSystem()
	if err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observability.RequestID())
	router.Use(observability.RequestLogger(logger))
	router.Use(observability.RequestMetricsMiddleware())
	router.Use(cors.New(corsConfig(cfg.Server.CorsOrigins)))
	router.Use(apiKeyAuth(cfg.Server.APIKey))

	// Create Huma API on top of the gin router
	humaConfig := huma.DefaultConfig("Starluck API", apiVersion)
	humaConfig.Info.Description = "Natal charts, synastry, composites and transit forecasts"
	humaConfig.Servers = []*huma.Server{
		{URL: "http://localhost:8080", Description: "Development server"},
	}
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"apiKey": {Type: "apiKey", In: "header", Name: apiKeyHeader},
	}

	app := &App{
		router:         router,
		api:            humagin.New(router, humaConfig),
		logger:         logger,
		cfg:            cfg,
		chartService:   charts,
		transitService: transitSvc,
		backend:        backend,
		defaultSystem:  defaultSystem,
	}

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized", "ephemeris", backend, "houseSystem", defaultSystem.String())
	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", apiKeyHeader, observability.RequestIDHeader},
		ExposeHeaders: []string{observability.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

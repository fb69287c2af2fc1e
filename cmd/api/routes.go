package main

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoints
	huma.Register(app.api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Summary:     "Ping health check",
		Description: "Check if the API is running",
		Tags:        []string{"health"},
	}, app.handlePing)

	huma.Register(app.api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service health",
		Description: "Report the API version and the active ephemeris backend",
		Tags:        []string{"health"},
	}, app.handleHealth)

	app.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	security := []map[string][]string{{"apiKey": {}}}

	huma.Register(app.api, huma.Operation{
		OperationID: "natal-chart",
		Method:      http.MethodPost,
		Path:        "/natal",
		Summary:     "Natal chart",
		Description: "Compute body positions, house cusps, angles and aspects for a birth time and place",
		Tags:        []string{"charts"},
		Security:    security,
	}, app.handleNatal)

	huma.Register(app.api, huma.Operation{
		OperationID: "synastry",
		Method:      http.MethodPost,
		Path:        "/synastry",
		Summary:     "Synastry aspects",
		Description: "Compute the aspects between the bodies of two natal charts",
		Tags:        []string{"charts"},
		Security:    security,
	}, app.handleSynastry)

	huma.Register(app.api, huma.Operation{
		OperationID: "composite",
		Method:      http.MethodPost,
		Path:        "/composite",
		Summary:     "Composite midpoints",
		Description: "Compute the shorter-arc midpoints of the bodies two natal charts share",
		Tags:        []string{"charts"},
		Security:    security,
	}, app.handleComposite)

	huma.Register(app.api, huma.Operation{
		OperationID: "forecast",
		Method:      http.MethodPost,
		Path:        "/forecast",
		Summary:     "Transit forecast",
		Description: "Sample transiting positions over a window and report their aspects to a natal chart",
		Tags:        []string{"transits"},
		Security:    security,
	}, app.handleForecast)
}

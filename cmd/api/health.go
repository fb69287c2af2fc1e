package main

import (
	"context"
)

// PingOutput represents the response for the ping endpoint
type PingOutput struct {
	Body struct {
		Message string `json:"message" example:"pong" doc:"Response message"`
	}
}

// handlePing is a health check endpoint that returns a simple pong message
func (app *App) handlePing(ctx context.Context, input *struct{}) (*PingOutput, error) {
	resp := &PingOutput{}
	resp.Body.Message = "pong"
	return resp, nil
}

// HealthOutput represents the response for the health endpoint
type HealthOutput struct {
	Body struct {
		Status    string `json:"status" example:"ok"`
		Version   string `json:"version" example:"1.0.0"`
		Ephemeris string `json:"ephemeris" example:"analytic" doc:"Active ephemeris backend"`
	}
}

func (app *App) handleHealth(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	resp := &HealthOutput{}
	resp.Body.Status = "ok"
	resp.Body.Version = apiVersion
	resp.Body.Ephemeris = app.backend
	return resp, nil
}

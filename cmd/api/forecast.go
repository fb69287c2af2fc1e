package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"starluck/internal/astro"
	"starluck/internal/observability"
	"starluck/internal/transits"
	"starluck/internal/types"
)

const (
	maxForecastDays      = 365
	maxForecastStepHours = 168
)

// ForecastInput is the request for the transit forecast endpoint
type ForecastInput struct {
	Body struct {
		Natal     NatalRequest `json:"natal"`
		StartDate string       `json:"start_date,omitempty" example:"2024-01-01" doc:"Local start, YYYY-MM-DD or YYYY-MM-DD HH:MM; now when empty"`
		Timezone  string       `json:"timezone,omitempty" doc:"Zone of start_date and of local event times; the natal zone when empty"`
		Days      int          `json:"days,omitempty" doc:"Window length in days, 1 to 365"`
		StepHours int          `json:"step_hours,omitempty" doc:"Hours between samples, 1 to 168"`
		Bodies    []string     `json:"bodies,omitempty" doc:"Transiting bodies; Sun through Pluto and the north node when empty"`
	}
}

type ForecastOutput struct {
	Body struct {
		Start     time.Time       `json:"start_utc"`
		Timezone  string          `json:"timezone"`
		Days      int             `json:"days"`
		StepHours int             `json:"step_hours"`
		Samples   int             `json:"samples"`
		Transits  []TransitOutput `json:"transits"`
	}
}

// toScanRequest applies defaults and the service's bounds to a forecast
// request. zone is the natal chart's timezone.
func (app *App) toScanRequest(input *ForecastInput, zone string, now time.Time) (transits.Request, error) {
	in := input.Body
	req := transits.Request{
		Timezone:  strings.TrimSpace(in.Timezone),
		Days:      in.Days,
		StepHours: in.StepHours,
	}
	if req.Timezone == "" {
		req.Timezone = zone
	}
	if req.Days == 0 {
		req.Days = app.cfg.App.ForecastDays
	}
	if req.StepHours == 0 {
		req.StepHours = app.cfg.App.ForecastStepHours
	}
	if req.Days > maxForecastDays || req.StepHours > maxForecastStepHours {
		return transits.Request{}, fmt.Errorf("%w: days must be at most %d and step_hours at most %d",
			transits.ErrInvalidScanParameters, maxForecastDays, maxForecastStepHours)
	}
	if samples := transits.SampleCount(req.Days, req.StepHours); samples > app.cfg.App.MaxScanSamples {
		return transits.Request{}, fmt.Errorf("%w: %d samples requested, limit is %d",
			errScanTooLarge, samples, app.cfg.App.MaxScanSamples)
	}

	if strings.TrimSpace(in.StartDate) == "" {
		req.Start = now
	} else {
		start, err := astro.ParseLocal(in.StartDate, req.Timezone)
		if err != nil {
			return transits.Request{}, err
		}
		req.Start = start
	}

	for _, name := range in.Bodies {
		body, err := types.ParseBody(name)
		if err != nil {
			return transits.Request{}, err
		}
		req.Bodies = append(req.Bodies, body)
	}
	return req, nil
}

func (app *App) handleForecast(ctx context.Context, input *ForecastInput) (*ForecastOutput, error) {
	natal, err := app.natal(input.Body.Natal)
	if err != nil {
		return nil, app.toHTTPError("compute natal chart", err)
	}

	req, err := app.toScanRequest(input, natal.Frame.Timezone, time.Now())
	if err != nil {
		return nil, app.toHTTPError("compute forecast", err)
	}

	started := time.Now()
	events, err := app.transitService.Scan(natal, req)
	if err != nil {
		return nil, app.toHTTPError("compute forecast", err)
	}
	samples := transits.SampleCount(req.Days, req.StepHours)
	observability.RecordTransitScan(samples, time.Since(started))

	resp := &ForecastOutput{}
	resp.Body.Start = req.Start.UTC()
	resp.Body.Timezone = req.Timezone
	resp.Body.Days = req.Days
	resp.Body.StepHours = req.StepHours
	resp.Body.Samples = samples
	resp.Body.Transits = newTransitOutputs(events)
	return resp, nil
}

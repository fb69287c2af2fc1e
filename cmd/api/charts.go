package main

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"starluck/internal/aspects"
	"starluck/internal/chart"
	"starluck/internal/composite"
	"starluck/internal/houses"
	"starluck/internal/observability"
	"starluck/internal/types"
)

// NatalInput is the request for the natal chart endpoint
type NatalInput struct {
	Body NatalRequest
}

// ChartOutput is the response for the natal chart endpoint
type ChartOutput struct {
	Body ChartResponse
}

// PairInput carries the two charts of a synastry or composite request
type PairInput struct {
	Body struct {
		ChartA NatalRequest `json:"chart_a"`
		ChartB NatalRequest `json:"chart_b"`
	}
}

type SynastryOutput struct {
	Body struct {
		Aspects []AspectOutput `json:"aspects"`
	}
}

type CompositeOutput struct {
	Body struct {
		Midpoints map[string]float64 `json:"midpoints" doc:"Midpoint longitude per shared body"`
		Bodies    []MidpointOutput   `json:"bodies" doc:"Midpoints in chart A body order"`
		Aspects   []AspectOutput     `json:"aspects" doc:"Major aspects between the composite points"`
	}
}

// toChartRequest parses the names in a natal request
func (app *App) toChartRequest(in NatalRequest) (chart.Request, error) {
	system := app.defaultSystem
	if strings.TrimSpace(in.HouseSystem) != "" {
		parsed, err := houses.ParseSystem(in.HouseSystem)
		if err != nil {
			return chart.Request{}, err
		}
		system = parsed
	}

	var bodies []types.Body
	for _, name := range in.Bodies {
		body, err := types.ParseBody(name)
		if err != nil {
			return chart.Request{}, err
		}
		bodies = append(bodies, body)
	}

	return chart.Request{
		DateTime:        in.DateTimeLocal,
		Timezone:        in.Timezone,
		Latitude:        in.Location.Latitude,
		Longitude:       in.Location.Longitude,
		ElevationMeters: in.Location.Elevation,
		HouseSystem:     system,
		Bodies:          bodies,
	}, nil
}

func (app *App) natal(in NatalRequest) (*chart.Chart, error) {
	req, err := app.toChartRequest(in)
	if err != nil {
		return nil, err
	}
	c, err := app.chartService.Natal(req)
	observability.RecordChart(req.HouseSystem.String(), err == nil)
	return c, err
}

// natalPair builds both charts concurrently
func (app *App) natalPair(a, b NatalRequest) (*chart.Chart, *chart.Chart, error) {
	var chartA, chartB *chart.Chart
	var g errgroup.Group
	g.Go(func() error {
		var err error
		chartA, err = app.natal(a)
		return err
	})
	g.Go(func() error {
		var err error
		chartB, err = app.natal(b)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return chartA, chartB, nil
}

func (app *App) handleNatal(ctx context.Context, input *NatalInput) (*ChartOutput, error) {
	c, err := app.natal(input.Body)
	if err != nil {
		return nil, app.toHTTPError("compute natal chart", err)
	}
	return &ChartOutput{Body: newChartResponse(c)}, nil
}

// planetPoints drops the part of fortune, which takes no part in aspects
func planetPoints(c *chart.Chart) []aspects.Point {
	var points []aspects.Point
	for _, p := range c.Points() {
		if p.Body != types.PartOfFortune {
			points = append(points, p)
		}
	}
	return points
}

func (app *App) handleSynastry(ctx context.Context, input *PairInput) (*SynastryOutput, error) {
	chartA, chartB, err := app.natalPair(input.Body.ChartA, input.Body.ChartB)
	if err != nil {
		return nil, app.toHTTPError("compute synastry", err)
	}

	resp := &SynastryOutput{}
	resp.Body.Aspects = newAspectOutputs(aspects.Between(planetPoints(chartA), planetPoints(chartB), aspects.FullConfig()))
	return resp, nil
}

func (app *App) handleComposite(ctx context.Context, input *PairInput) (*CompositeOutput, error) {
	chartA, chartB, err := app.natalPair(input.Body.ChartA, input.Body.ChartB)
	if err != nil {
		return nil, app.toHTTPError("compute composite", err)
	}

	mids := composite.Ordered(chartA, chartB)
	resp := &CompositeOutput{}
	resp.Body.Midpoints = make(map[string]float64, len(mids))
	for body, lon := range composite.Resolve(chartA, chartB) {
		resp.Body.Midpoints[body.String()] = lon
	}
	resp.Body.Bodies = newMidpointOutputs(mids)
	resp.Body.Aspects = newAspectOutputs(composite.Aspects(mids, aspects.MajorConfig()))
	return resp, nil
}

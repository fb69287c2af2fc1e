package chart

import (
	"fmt"
	"log/slog"
	"slices"

	"starluck/internal/aspects"
	"starluck/internal/astro"
	"starluck/internal/ephemeris"
	"starluck/internal/houses"
	"starluck/internal/location"
	"starluck/internal/types"
)

// Request describes a natal chart. An empty Timezone is resolved from the
// coordinates; nil Bodies means types.DefaultBodies.
type Request struct {
	DateTime        string
	Timezone        string
	Latitude        float64
	Longitude       float64
	ElevationMeters float64
	HouseSystem     houses.System
	Bodies          []types.Body
}

// Service builds natal charts
type Service interface {
	// Natal resolves the request's time and place and builds the chart
	Natal(req Request) (*Chart, error)
	// Build computes a chart for an already resolved frame
	Build(frame astro.Frame, system houses.System, bodies []types.Body) (*Chart, error)
}

type chartService struct {
	provider  ephemeris.Provider
	locations location.Service
	logger    *slog.Logger
}

// NewChartService creates a chart service with the tzf-backed location service
func NewChartService(provider ephemeris.Provider, logger *slog.Logger) (Service, error) {
	locations, err := location.NewLocationService(logger)
	if err != nil {
		return nil, err
	}
	return NewChartServiceWithProviders(provider, locations, logger), nil
}

// NewChartServiceWithProviders creates a chart service with custom collaborators
func NewChartServiceWithProviders(provider ephemeris.Provider, locations location.Service, logger *slog.Logger) Service {
	return &chartService{
		provider:  provider,
		locations: locations,
		logger:    logger.With("component", "chart-service"),
	}
}

func (s *chartService) Natal(req Request) (*Chart, error) {
	observer, err := s.locations.Resolve(req.Latitude, req.Longitude, req.ElevationMeters, req.Timezone)
	if err != nil {
		return nil, err
	}

	frame, err := astro.Resolve(req.DateTime, observer.Timezone, observer.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve chart time: %w", err)
	}

	c, err := s.Build(frame, req.HouseSystem, req.Bodies)
	if err != nil {
		return nil, err
	}
	c.TimezoneFromCoordinates = observer.TimezoneFromCoordinates
	return c, nil
}

func (s *chartService) Build(frame astro.Frame, system houses.System, bodies []types.Body) (*Chart, error) {
	bodies = normalizeBodies(bodies)

	houseResult, err := houses.Compute(system, frame)
	if err != nil {
		return nil, err
	}

	// Sun and Moon are always needed for sect, phase and the part of fortune
	lookup := make([]types.Body, 0, len(bodies)+2)
	for _, body := range bodies {
		if body != types.PartOfFortune {
			lookup = append(lookup, body)
		}
	}
	for _, body := range []types.Body{types.Sun, types.Moon} {
		if !slices.Contains(lookup, body) {
			lookup = append(lookup, body)
		}
	}

	resolved, err := ephemeris.Positions(s.provider, lookup, frame.Instant)
	if err != nil {
		s.logger.Error("failed to resolve chart positions",
			"utc", frame.Instant.UTC,
			"backend", s.provider.Name(),
			"error", err,
		)
		return nil, err
	}
	byBody := make(map[types.Body]types.BodyPosition, len(resolved))
	for _, pos := range resolved {
		byBody[pos.Body] = pos
	}

	sun, moon := byBody[types.Sun], byBody[types.Moon]
	sect := SectOf(frame, sun)
	fortune := types.BodyPosition{
		Body:      types.PartOfFortune,
		Longitude: PartOfFortune(houseResult.Angles.ASC, sun.Longitude, moon.Longitude, sect),
	}

	positions := make([]types.BodyPosition, 0, len(bodies))
	for _, body := range bodies {
		if body == types.PartOfFortune {
			positions = append(positions, fortune)
			continue
		}
		positions = append(positions, byBody[body])
	}

	var planets []aspects.Point
	for _, pos := range positions {
		if pos.Body != types.PartOfFortune {
			planets = append(planets, aspects.Point{Body: pos.Body, Longitude: pos.Longitude})
		}
	}

	chart := &Chart{
		Frame:         frame,
		Houses:        houseResult,
		Positions:     positions,
		PartOfFortune: fortune,
		Aspects:       aspects.Within(planets, aspects.FullConfig()),
		Sect:          sect,
		MoonPhase:     PhaseOf(sun.Longitude, moon.Longitude),
		Backend:       s.provider.Name(),
	}

	s.logger.Debug("chart built",
		"utc", frame.Instant.UTC,
		"houseSystem", system.String(),
		"bodies", len(positions),
		"aspects", len(chart.Aspects),
	)
	return chart, nil
}

// normalizeBodies applies the default set and drops duplicates, keeping
// the first occurrence.
func normalizeBodies(bodies []types.Body) []types.Body {
	if len(bodies) == 0 {
		return slices.Clone(types.DefaultBodies)
	}
	out := make([]types.Body, 0, len(bodies))
	for _, body := range bodies {
		if !slices.Contains(out, body) {
			out = append(out, body)
		}
	}
	return out
}

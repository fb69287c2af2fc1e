// Package transits samples transiting positions over a time window and
// reports their aspects to a natal chart.
//
// The scan is a fixed grid: samples are taken at start + k*step for
// k = 0..floor(days*24/step), so the window end is included when it falls
// on the grid. Steps are elapsed hours, a DST change does not stretch one.
// Events are not refined to the exact hit; each sample reports what it sees.
package transits

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"starluck/internal/aspects"
	"starluck/internal/astro"
	"starluck/internal/chart"
	"starluck/internal/ephemeris"
	"starluck/internal/types"
)

// ErrInvalidScanParameters is returned for a non-positive window length or step
var ErrInvalidScanParameters = errors.New("invalid scan parameters")

// Request is a scan window. Start is an absolute instant; Timezone only
// controls the local stamp on each event.
type Request struct {
	Start     time.Time
	Timezone  string
	Days      int
	StepHours int
	// Bodies is the transiting set, types.DefaultBodies when empty
	Bodies []types.Body
}

// Event is one aspect seen at one sample
type Event struct {
	UTC        time.Time
	Local      time.Time
	Transiting types.Body
	Natal      types.Body
	Type       aspects.Type
	Orb        float64
	Offset     float64
	Retrograde bool // of the transiting body
}

// SampleCount returns the number of samples a window produces, 0 when the
// window is invalid. Callers use it to bound scan cost before scanning.
func SampleCount(days, stepHours int) int {
	if days <= 0 || stepHours <= 0 {
		return 0
	}
	return days*24/stepHours + 1
}

// Service scans a window for transiting aspects to a natal chart
type Service interface {
	Scan(natal *chart.Chart, req Request) ([]Event, error)
}

type transitService struct {
	provider ephemeris.Provider
	config   aspects.Config
	logger   *slog.Logger
}

// NewTransitService creates a scanner with transit orbs
func NewTransitService(provider ephemeris.Provider, logger *slog.Logger) Service {
	return NewTransitServiceWithConfig(provider, aspects.TransitConfig(), logger)
}

// NewTransitServiceWithConfig creates a scanner with a custom aspect set
func NewTransitServiceWithConfig(provider ephemeris.Provider, cfg aspects.Config, logger *slog.Logger) Service {
	return &transitService{
		provider: provider,
		config:   cfg,
		logger:   logger.With("component", "transit-service"),
	}
}

func (s *transitService) Scan(natal *chart.Chart, req Request) ([]Event, error) {
	if req.Days <= 0 || req.StepHours <= 0 {
		return nil, fmt.Errorf("%w: days=%d step_hours=%d must both be positive",
			ErrInvalidScanParameters, req.Days, req.StepHours)
	}
	zone, err := astro.LoadZone(req.Timezone)
	if err != nil {
		return nil, err
	}

	bodies := req.Bodies
	if len(bodies) == 0 {
		bodies = types.DefaultBodies
	}
	bodies = slices.DeleteFunc(slices.Clone(bodies), func(b types.Body) bool {
		return b == types.PartOfFortune
	})

	var natalPoints []aspects.Point
	for _, p := range natal.Points() {
		if p.Body != types.PartOfFortune {
			natalPoints = append(natalPoints, p)
		}
	}

	samples := SampleCount(req.Days, req.StepHours)
	step := time.Duration(req.StepHours) * time.Hour
	start := astro.NewInstant(req.Start)

	var events []Event
	for k := range samples {
		at := start.Add(time.Duration(k) * step)

		positions, err := ephemeris.Positions(s.provider, bodies, at)
		if err != nil {
			s.logger.Error("failed to resolve transiting positions",
				"utc", at.UTC,
				"backend", s.provider.Name(),
				"error", err,
			)
			return nil, fmt.Errorf("failed to resolve transits at %s: %w", at.UTC.Format(time.RFC3339), err)
		}

		retrograde := make(map[types.Body]bool, len(positions))
		for _, pos := range positions {
			retrograde[pos.Body] = pos.Retrograde
		}

		for _, asp := range aspects.Between(aspects.PointsOf(positions), natalPoints, s.config) {
			events = append(events, Event{
				UTC:        at.UTC,
				Local:      at.UTC.In(zone),
				Transiting: asp.Body1,
				Natal:      asp.Body2,
				Type:       asp.Type,
				Orb:        asp.Orb,
				Offset:     asp.Offset,
				Retrograde: retrograde[asp.Body1],
			})
		}
	}

	s.logger.Debug("transit scan complete",
		"start", start.UTC,
		"samples", samples,
		"events", len(events),
	)
	return events, nil
}

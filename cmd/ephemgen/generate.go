package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"starluck/internal/astro"
	"starluck/internal/ephemeris"
	"starluck/internal/providers/horizons"
	"starluck/internal/types"
)

// fetchedBodies come from Horizons; the node is filled from the analytic
// backend since Horizons has no command for it.
var fetchedBodies = []types.Body{
	types.Sun, types.Moon, types.Mercury, types.Venus, types.Mars,
	types.Jupiter, types.Saturn, types.Uranus, types.Neptune, types.Pluto,
	types.Chiron,
}

type window struct {
	Start time.Time
	Stop  time.Time
	Step  time.Duration
}

func parseWindow(start, stop string, step time.Duration) (window, error) {
	from, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return window{}, fmt.Errorf("invalid -start %q: %w", start, err)
	}
	to, err := time.Parse(time.DateOnly, stop)
	if err != nil {
		return window{}, fmt.Errorf("invalid -stop %q: %w", stop, err)
	}
	if !to.After(from) {
		return window{}, errors.New("-stop must be after -start")
	}
	if step < time.Minute || step%time.Minute != 0 {
		return window{}, fmt.Errorf("-step %s must be a positive whole number of minutes", step)
	}
	return window{Start: from, Stop: to, Step: step}, nil
}

// horizonsStep renders the step in the coarsest Horizons unit that is exact
func (w window) horizonsStep() string {
	switch {
	case w.Step%(24*time.Hour) == 0:
		return fmt.Sprintf("%d d", w.Step/(24*time.Hour))
	case w.Step%time.Hour == 0:
		return fmt.Sprintf("%d h", w.Step/time.Hour)
	default:
		return fmt.Sprintf("%d m", w.Step/time.Minute)
	}
}

// instants returns the grid start, start+step, ... up to and including stop
func (w window) instants() []astro.Instant {
	var out []astro.Instant
	for t := w.Start; !t.After(w.Stop); t = t.Add(w.Step) {
		out = append(out, astro.NewInstant(t))
	}
	return out
}

// positionFetcher is the slice of the Horizons client the generator uses
type positionFetcher interface {
	GetEclipticPositions(ctx context.Context, body types.Body, start, stop time.Time, step string) ([]horizons.Sample, error)
}

type generator struct {
	client   positionFetcher
	table    *ephemeris.Table
	parallel int
	logger   *slog.Logger
}

// Run fetches every body concurrently, then writes all rows. Any fetch
// failure cancels the remaining fetches and nothing is written.
func (g *generator) Run(ctx context.Context, w window) error {
	rowsByBody := make([][]ephemeris.Row, len(fetchedBodies)+1)

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(max(g.parallel, 1))
	for i, body := range fetchedBodies {
		group.Go(func() error {
			samples, err := g.client.GetEclipticPositions(gctx, body, w.Start, w.Stop, w.horizonsStep())
			if err != nil {
				return fmt.Errorf("failed to fetch %s: %w", body, err)
			}
			rows := make([]ephemeris.Row, len(samples))
			for j, s := range samples {
				rows[j] = ephemeris.Row{Body: body, JulianDay: s.JulianDay, Longitude: s.Longitude, Latitude: s.Latitude}
			}
			rowsByBody[i] = rows
			g.logger.Debug("fetched body", "body", body, "rows", len(rows))
			return nil
		})
	}
	group.Go(func() error {
		rows, err := nodeRows(w)
		rowsByBody[len(fetchedBodies)] = rows
		return err
	})
	if err := group.Wait(); err != nil {
		return err
	}

	// SQLite takes one writer at a time
	for _, rows := range rowsByBody {
		if err := g.table.Insert(ctx, rows); err != nil {
			return fmt.Errorf("failed to store rows: %w", err)
		}
		if len(rows) > 0 {
			g.logger.Info("stored body", "body", rows[0].Body, "rows", len(rows))
		}
	}
	return nil
}

func nodeRows(w window) ([]ephemeris.Row, error) {
	analytic := ephemeris.NewAnalytic()
	instants := w.instants()

	rows := make([]ephemeris.Row, 0, len(instants))
	for _, at := range instants {
		pos, err := analytic.Position(types.NorthNode, at)
		if err != nil {
			return nil, fmt.Errorf("failed to compute %s: %w", types.NorthNode, err)
		}
		rows = append(rows, ephemeris.Row{
			Body:      types.NorthNode,
			JulianDay: at.JulianDay,
			Longitude: pos.Longitude,
			Latitude:  pos.Latitude,
		})
	}
	return rows, nil
}

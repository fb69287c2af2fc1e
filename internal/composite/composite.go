// Package composite builds midpoint composites of two charts.
package composite

import (
	"starluck/internal/aspects"
	"starluck/internal/chart"
	"starluck/internal/types"
)

// Midpoint is the shorter-arc midpoint of one body shared by both charts
type Midpoint struct {
	Body      types.Body
	Longitude float64
}

// Resolve maps every body held by both charts to its midpoint. Bodies
// missing from either chart are left out.
func Resolve(a, b *chart.Chart) map[types.Body]float64 {
	mids := make(map[types.Body]float64)
	for _, m := range Ordered(a, b) {
		mids[m.Body] = m.Longitude
	}
	return mids
}

// Ordered returns the shared midpoints in the body order of chart a
func Ordered(a, b *chart.Chart) []Midpoint {
	lonsB := b.Longitudes()

	var mids []Midpoint
	for _, pos := range a.Positions {
		lonB, ok := lonsB[pos.Body]
		if !ok {
			continue
		}
		mids = append(mids, Midpoint{
			Body:      pos.Body,
			Longitude: types.Midpoint(pos.Longitude, lonB),
		})
	}
	return mids
}

// Aspects matches the composite points against each other
func Aspects(mids []Midpoint, cfg aspects.Config) []aspects.Aspect {
	points := make([]aspects.Point, 0, len(mids))
	for _, m := range mids {
		if m.Body == types.PartOfFortune {
			continue
		}
		points = append(points, aspects.Point{Body: m.Body, Longitude: m.Longitude})
	}
	return aspects.Within(points, cfg)
}

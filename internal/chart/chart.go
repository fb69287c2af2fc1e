// Package chart assembles natal charts from a frame, an ephemeris provider
// and a house system.
package chart

import (
	"starluck/internal/aspects"
	"starluck/internal/astro"
	"starluck/internal/houses"
	"starluck/internal/types"
)

// Chart is an immutable natal chart. Positions follow the requested body
// order.
type Chart struct {
	Frame         astro.Frame
	Houses        houses.Result
	Positions     []types.BodyPosition
	PartOfFortune types.BodyPosition
	Aspects       []aspects.Aspect
	Sect          Sect
	MoonPhase     MoonPhase
	Backend       string

	// TimezoneFromCoordinates is set when the zone was looked up from the
	// location instead of supplied with the request
	TimezoneFromCoordinates bool
}

// Position returns the position of body when the chart holds it
func (c *Chart) Position(body types.Body) (types.BodyPosition, bool) {
	if body == types.PartOfFortune {
		return c.PartOfFortune, true
	}
	for _, pos := range c.Positions {
		if pos.Body == body {
			return pos, true
		}
	}
	return types.BodyPosition{}, false
}

// HouseOf returns the house of a body, 0 when the chart does not hold it
func (c *Chart) HouseOf(body types.Body) int {
	pos, ok := c.Position(body)
	if !ok {
		return 0
	}
	return c.Houses.HouseOf(pos.Longitude)
}

// Bodies returns the chart's bodies in order
func (c *Chart) Bodies() []types.Body {
	bodies := make([]types.Body, len(c.Positions))
	for i, pos := range c.Positions {
		bodies[i] = pos.Body
	}
	return bodies
}

// Points returns the chart's positions as aspect matcher input
func (c *Chart) Points() []aspects.Point {
	return aspects.PointsOf(c.Positions)
}

// Longitudes maps every body in the chart to its longitude
func (c *Chart) Longitudes() map[types.Body]float64 {
	lons := make(map[types.Body]float64, len(c.Positions))
	for _, pos := range c.Positions {
		lons[pos.Body] = pos.Longitude
	}
	return lons
}

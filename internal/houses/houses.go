// Package houses divides the ecliptic into twelve houses and derives the
// chart angles from sidereal time, latitude and obliquity.
package houses

import (
	"fmt"
	"math"

	"starluck/internal/astro"
	"starluck/internal/types"
)

// Result holds twelve cusp longitudes, house 1 first, and the chart angles.
// Under WholeSign the ASC lies inside house 1 rather than on its cusp.
type Result struct {
	System System
	Cusps  [12]float64
	Angles Angles
}

// Cusp returns the cusp of house n (1..12)
func (r Result) Cusp(n int) float64 {
	return r.Cusps[(n-1+12)%12]
}

// Compute derives house cusps and angles for the frame's sidereal time,
// latitude and obliquity.
func Compute(system System, frame astro.Frame) (Result, error) {
	return compute(system, frame.LST, frame.Location.Latitude, frame.Obliquity)
}

func compute(system System, ramc, latitude, obliquity float64) (Result, error) {
	if math.Abs(latitude) >= 90 {
		return Result{}, fmt.Errorf("%w: no horizon at latitude %.4f", ErrDegenerate, latitude)
	}

	angles := NewAngles(Ascendant(ramc, latitude, obliquity), Midheaven(ramc, obliquity))

	var cusps [12]float64
	switch system {
	case WholeSign:
		cusps = wholeSignCusps(angles.ASC)
	case Equal:
		cusps = equalCusps(angles.ASC)
	case Placidus:
		var err error
		cusps, err = placidusCusps(ramc, latitude, obliquity)
		if err != nil {
			return Result{}, err
		}
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownSystem, system)
	}

	return Result{
		System: system,
		Cusps:  cusps,
		Angles: angles,
	}, nil
}

// wholeSignCusps starts house 1 at the first degree of the rising sign
func wholeSignCusps(asc float64) [12]float64 {
	start := types.SignOf(asc).Start()
	var cusps [12]float64
	for i := range cusps {
		cusps[i] = types.Norm360(start + 30*float64(i))
	}
	return cusps
}

// equalCusps places a cusp every 30° from the ascendant
func equalCusps(asc float64) [12]float64 {
	var cusps [12]float64
	for i := range cusps {
		cusps[i] = types.Norm360(asc + 30*float64(i))
	}
	return cusps
}

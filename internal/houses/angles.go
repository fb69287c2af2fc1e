package houses

import (
	"math"

	"starluck/internal/types"
)

// Angles are the four cardinal chart points. DS and IC are always the
// exact antipodes of ASC and MC.
type Angles struct {
	ASC float64
	MC  float64
	DS  float64
	IC  float64
}

// NewAngles derives DS and IC from ASC and MC
func NewAngles(asc, mc float64) Angles {
	asc, mc = types.Norm360(asc), types.Norm360(mc)
	return Angles{
		ASC: asc,
		MC:  mc,
		DS:  types.Norm360(asc + 180),
		IC:  types.Norm360(mc + 180),
	}
}

// Midheaven returns the ecliptic longitude culminating at the given RAMC
func Midheaven(ramc, obliquity float64) float64 {
	t, e := rad(ramc), rad(obliquity)
	return types.Norm360(deg(math.Atan2(math.Sin(t), math.Cos(t)*math.Cos(e))))
}

// Ascendant returns the ecliptic longitude rising on the eastern horizon
func Ascendant(ramc, latitude, obliquity float64) float64 {
	t, e, phi := rad(ramc), rad(obliquity), rad(latitude)
	y := math.Cos(t)
	x := -(math.Sin(t)*math.Cos(e) + math.Tan(phi)*math.Sin(e))
	return types.Norm360(deg(math.Atan2(y, x)))
}

// longitudeOfRA converts a right ascension on the ecliptic to longitude
func longitudeOfRA(ra, obliquity float64) float64 {
	return Midheaven(ra, obliquity)
}

func rad(d float64) float64 { return d * math.Pi / 180 }
func deg(r float64) float64 { return r * 180 / math.Pi }

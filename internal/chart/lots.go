package chart

import (
	"starluck/internal/astro"
	"starluck/internal/types"
)

// Sect tells whether the Sun was above the horizon at the chart moment
type Sect int

const (
	Day Sect = iota
	Night
)

func (s Sect) String() string {
	if s == Day {
		return "DAY"
	}
	return "NIGHT"
}

// SectOf returns Day when the Sun's altitude in frame is positive
func SectOf(frame astro.Frame, sun types.BodyPosition) Sect {
	if frame.EclipticAltitude(sun.Longitude, sun.Latitude) > 0 {
		return Day
	}
	return Night
}

// PartOfFortune returns ASC + Moon - Sun by day and ASC + Sun - Moon by night
func PartOfFortune(asc, sun, moon float64, sect Sect) float64 {
	if sect == Day {
		return types.Norm360(asc + moon - sun)
	}
	return types.Norm360(asc + sun - moon)
}

// MoonPhase is the Sun-Moon elongation and its named phase
type MoonPhase struct {
	Name  string
	Angle float64 // Moon minus Sun, [0, 360)
}

var phaseNames = [8]string{
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Last Quarter",
	"Waning Crescent",
}

// PhaseOf names the phase whose 45° band, centered on the exact phase
// angle, contains the elongation.
func PhaseOf(sun, moon float64) MoonPhase {
	angle := types.Norm360(moon - sun)
	band := int(types.Norm360(angle+22.5)/45) % 8
	return MoonPhase{Name: phaseNames[band], Angle: angle}
}

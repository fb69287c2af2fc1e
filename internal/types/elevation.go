package types

const FeetToMeters = 0.3048

// Elevation above sea level. It is carried with a location but does not
// enter angle computations.
type Elevation struct {
	Feet   float64
	Meters float64
}

func NewElevationFromMeters(meters float64) Elevation {
	return Elevation{
		Meters: meters,
		Feet:   meters / FeetToMeters,
	}
}

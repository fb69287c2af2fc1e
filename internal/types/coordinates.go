package types

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidLocation is returned when coordinates fall outside the valid range
var ErrInvalidLocation = errors.New("invalid location")

// GeoLocation is an observer position on the Earth's surface.
// Longitude is east-positive.
type GeoLocation struct {
	Latitude  float64
	Longitude float64
	Elevation Elevation
}

func NewGeoLocation(latitude, longitude, elevationMeters float64) GeoLocation {
	return GeoLocation{
		Latitude:  latitude,
		Longitude: longitude,
		Elevation: NewElevationFromMeters(elevationMeters),
	}
}

// Validate checks latitude is within [-90, 90] and longitude within [-180, 180]
func (g GeoLocation) Validate() error {
	if math.IsNaN(g.Latitude) || g.Latitude < -90 || g.Latitude > 90 {
		return fmt.Errorf("%w: latitude %f out of range [-90, 90]", ErrInvalidLocation, g.Latitude)
	}
	if math.IsNaN(g.Longitude) || g.Longitude < -180 || g.Longitude > 180 {
		return fmt.Errorf("%w: longitude %f out of range [-180, 180]", ErrInvalidLocation, g.Longitude)
	}
	return nil
}

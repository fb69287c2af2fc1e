package types

import "math"

// Ecliptic longitudes are circular. Every difference, comparison and mean
// in this module goes through the helpers below.

// Norm360 wraps an angle in degrees into [0, 360).
func Norm360(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// -1e-15 + 360 rounds to 360
	if d >= 360 {
		d -= 360
	}
	return d
}

// Separation returns the shorter angular distance between a and b, in [0, 180].
func Separation(a, b float64) float64 {
	d := Norm360(a - b)
	if d > 180 {
		return 360 - d
	}
	return d
}

// SignedDelta returns the motion from a to b wrapped into [-180, 180).
// Positive means b lies ahead of a in zodiac order.
func SignedDelta(a, b float64) float64 {
	return Norm360(b-a+180) - 180
}

// Midpoint returns the midpoint of a and b lying on the shorter arc between
// them. For exactly opposite inputs the mean of the normalized values is
// returned, so Midpoint(a, b) == Midpoint(b, a) always holds.
func Midpoint(a, b float64) float64 {
	a, b = Norm360(a), Norm360(b)
	m := (a + b) / 2
	if math.Abs(a-b) > 180 {
		m += 180
	}
	return Norm360(m)
}

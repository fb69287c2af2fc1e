package astro

import "starluck/internal/types"

// GreenwichSiderealTime returns the mean sidereal time at Greenwich in
// degrees [0, 360) for a UT Julian day (Meeus, Astronomical Algorithms 12.4).
func GreenwichSiderealTime(jd float64) float64 {
	d := jd - J2000
	t := d / daysPerCentury
	gmst := 280.46061837 +
		360.98564736629*d +
		0.000387933*t*t -
		t*t*t/38710000
	return types.Norm360(gmst)
}

// LocalSiderealTime applies an east-positive geographic longitude to GMST.
// The result is the right ascension of the meridian (RAMC) in degrees.
func LocalSiderealTime(jd, longitude float64) float64 {
	return types.Norm360(GreenwichSiderealTime(jd) + longitude)
}

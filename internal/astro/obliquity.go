package astro

// MeanObliquity returns the mean obliquity of the ecliptic in degrees
// (IAU 1980 polynomial).
func MeanObliquity(jd float64) float64 {
	t := (jd - J2000) / daysPerCentury
	return 23.439291111 -
		0.013004167*t -
		1.6389e-7*t*t +
		5.0361e-7*t*t*t
}

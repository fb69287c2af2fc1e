package astro

import (
	"math"
	"time"
)

const (
	// J2000 is the Julian day of 2000-01-01T12:00:00 UTC
	J2000 = 2451545.0

	unixEpochJD    = 2440587.5
	secondsPerDay  = 86400.0
	daysPerCentury = 36525.0
	nanosPerSecond = 1e9
)

// Instant is a point in time on the UT scale together with its Julian day
type Instant struct {
	UTC       time.Time
	JulianDay float64
}

// NewInstant builds an Instant from any time.Time, converting it to UTC
func NewInstant(t time.Time) Instant {
	utc := t.UTC()
	return Instant{
		UTC:       utc,
		JulianDay: JulianDay(utc),
	}
}

// InstantFromJulianDay is the inverse of NewInstant, rounded to the
// millisecond. A float64 Julian day resolves about 40µs near the present.
func InstantFromJulianDay(jd float64) Instant {
	millis := math.Round((jd - unixEpochJD) * secondsPerDay * 1e3)
	utc := time.UnixMilli(int64(millis)).UTC()
	return Instant{UTC: utc, JulianDay: jd}
}

// JulianDay returns the Julian day number of t
func JulianDay(t time.Time) float64 {
	days := float64(t.Unix()) / secondsPerDay
	days += float64(t.Nanosecond()) / (secondsPerDay * nanosPerSecond)
	return days + unixEpochJD
}

// Centuries returns Julian centuries elapsed since J2000
func (i Instant) Centuries() float64 {
	return (i.JulianDay - J2000) / daysPerCentury
}

// Add returns the instant d later
func (i Instant) Add(d time.Duration) Instant {
	return NewInstant(i.UTC.Add(d))
}

// GMST returns Greenwich mean sidereal time in degrees
func (i Instant) GMST() float64 {
	return GreenwichSiderealTime(i.JulianDay)
}

package astro

import (
	"math"

	"starluck/internal/types"
)

func rad(deg float64) float64 { return deg * math.Pi / 180 }
func deg(rad float64) float64 { return rad * 180 / math.Pi }

// EclipticToEquatorial converts ecliptic longitude/latitude to right
// ascension and declination, all in degrees.
func EclipticToEquatorial(longitude, latitude, obliquity float64) (ra, dec float64) {
	l, b, e := rad(longitude), rad(latitude), rad(obliquity)
	sinDec := math.Sin(b)*math.Cos(e) + math.Cos(b)*math.Sin(e)*math.Sin(l)
	dec = deg(math.Asin(clamp(sinDec)))
	ra = deg(math.Atan2(math.Sin(l)*math.Cos(e)-math.Tan(b)*math.Sin(e), math.Cos(l)))
	return types.Norm360(ra), dec
}

// Altitude returns the altitude above the horizon, in degrees, of a point
// with the given equatorial coordinates for an observer at latitude whose
// local sidereal time is lst.
func Altitude(ra, dec, lst, latitude float64) float64 {
	h := rad(lst - ra)
	d, phi := rad(dec), rad(latitude)
	sinAlt := math.Sin(phi)*math.Sin(d) + math.Cos(phi)*math.Cos(d)*math.Cos(h)
	return deg(math.Asin(clamp(sinAlt)))
}

// EclipticAltitude returns the altitude of an ecliptic position in frame f
func (f Frame) EclipticAltitude(longitude, latitude float64) float64 {
	ra, dec := EclipticToEquatorial(longitude, latitude, f.Obliquity)
	return Altitude(ra, dec, f.LST, f.Location.Latitude)
}

func clamp(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

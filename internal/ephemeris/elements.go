package ephemeris

import (
	"math"

	"starluck/internal/types"
)

// Low-precision orbital elements (P. Schlyter, "How to compute planetary
// positions"). d counts days from 1999-12-31T00:00 TT, angles are degrees
// referred to the ecliptic and equinox of date. Accuracy is in the order
// of arc minutes for the planets and a few tenths of a degree for the Moon.

const elementsEpochJD = 2451543.5

type orbitalElements struct {
	N float64 // longitude of the ascending node
	i float64 // inclination
	w float64 // argument of perihelion
	a float64 // semi-major axis, AU (Earth radii for the Moon)
	e float64 // eccentricity
	M float64 // mean anomaly
}

var elementsByBody = map[types.Body]func(d float64) orbitalElements{
	types.Sun: func(d float64) orbitalElements {
		return orbitalElements{0, 0, 282.9404 + 4.70935e-5*d, 1.0, 0.016709 - 1.151e-9*d, 356.0470 + 0.9856002585*d}
	},
	types.Moon: func(d float64) orbitalElements {
		return orbitalElements{125.1228 - 0.0529538083*d, 5.1454, 318.0634 + 0.1643573223*d, 60.2666, 0.054900, 115.3654 + 13.0649929509*d}
	},
	types.Mercury: func(d float64) orbitalElements {
		return orbitalElements{48.3313 + 3.24587e-5*d, 7.0047 + 5.00e-8*d, 29.1241 + 1.01444e-5*d, 0.387098, 0.205635 + 5.59e-10*d, 168.6562 + 4.0923344368*d}
	},
	types.Venus: func(d float64) orbitalElements {
		return orbitalElements{76.6799 + 2.46590e-5*d, 3.3946 + 2.75e-8*d, 54.8910 + 1.38374e-5*d, 0.723330, 0.006773 - 1.302e-9*d, 48.0052 + 1.6021302244*d}
	},
	types.Mars: func(d float64) orbitalElements {
		return orbitalElements{49.5574 + 2.11081e-5*d, 1.8497 - 1.78e-8*d, 286.5016 + 2.92961e-5*d, 1.523688, 0.093405 + 2.516e-9*d, 18.6021 + 0.5240207766*d}
	},
	types.Jupiter: func(d float64) orbitalElements {
		return orbitalElements{100.4542 + 2.76854e-5*d, 1.3030 - 1.557e-7*d, 273.8777 + 1.64505e-5*d, 5.20256, 0.048498 + 4.469e-9*d, 19.8950 + 0.0830853001*d}
	},
	types.Saturn: func(d float64) orbitalElements {
		return orbitalElements{113.6634 + 2.38980e-5*d, 2.4886 - 1.081e-7*d, 339.3939 + 2.97661e-5*d, 9.55475, 0.055546 - 9.499e-9*d, 316.9670 + 0.0334442282*d}
	},
	types.Uranus: func(d float64) orbitalElements {
		return orbitalElements{74.0005 + 1.3978e-5*d, 0.7733 + 1.9e-8*d, 96.6612 + 3.0565e-5*d, 19.18171 - 1.55e-8*d, 0.047318 + 7.45e-9*d, 142.5905 + 0.011725806*d}
	},
	types.Neptune: func(d float64) orbitalElements {
		return orbitalElements{131.7806 + 3.0173e-5*d, 1.7700 - 2.55e-7*d, 272.8461 - 6.027e-6*d, 30.05826 + 3.313e-8*d, 0.008606 + 2.15e-9*d, 260.2471 + 0.005995147*d}
	},
}

func sind(x float64) float64 { return math.Sin(x * math.Pi / 180) }
func cosd(x float64) float64 { return math.Cos(x * math.Pi / 180) }
func atan2d(y, x float64) float64 {
	return math.Atan2(y, x) * 180 / math.Pi
}

// eccentricAnomaly solves Kepler's equation by Newton iteration, in degrees
func eccentricAnomaly(meanAnomaly, e float64) float64 {
	m := types.Norm360(meanAnomaly)
	eDeg := e * 180 / math.Pi
	ecc := m + eDeg*sind(m)*(1+e*cosd(m))
	for range 50 {
		next := ecc - (ecc-eDeg*sind(ecc)-m)/(1-e*cosd(ecc))
		if math.Abs(next-ecc) < 1e-9 {
			return next
		}
		ecc = next
	}
	return ecc
}

// anomalies returns true anomaly (degrees) and distance in the orbital plane
func (el orbitalElements) anomalies() (v, r float64) {
	ecc := eccentricAnomaly(el.M, el.e)
	xv := el.a * (cosd(ecc) - el.e)
	yv := el.a * math.Sqrt(1-el.e*el.e) * sind(ecc)
	return atan2d(yv, xv), math.Hypot(xv, yv)
}

// position returns ecliptic rectangular coordinates centered on the primary
func (el orbitalElements) position() (x, y, z float64) {
	v, r := el.anomalies()
	u := v + el.w
	x = r * (cosd(el.N)*cosd(u) - sind(el.N)*sind(u)*cosd(el.i))
	y = r * (sind(el.N)*cosd(u) + cosd(el.N)*sind(u)*cosd(el.i))
	z = r * sind(u) * sind(el.i)
	return x, y, z
}

func spherical(x, y, z float64) (lon, lat, r float64) {
	return types.Norm360(atan2d(y, x)), atan2d(z, math.Hypot(x, y)), math.Sqrt(x*x + y*y + z*z)
}

func rectangular(lon, lat, r float64) (x, y, z float64) {
	return r * cosd(lon) * cosd(lat), r * sind(lon) * cosd(lat), r * sind(lat)
}

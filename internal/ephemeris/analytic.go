package ephemeris

import (
	"starluck/internal/astro"
	"starluck/internal/types"
)

const analyticName = "analytic"

// Analytic computes positions from orbital elements with the main
// perturbation terms. It needs no data files and holds no state.
type Analytic struct{}

func NewAnalytic() *Analytic {
	return &Analytic{}
}

func (a *Analytic) Name() string {
	return analyticName
}

// Position returns the position of body at the instant. Speed and
// retrograde come from a 10-minute finite difference.
func (a *Analytic) Position(body types.Body, at astro.Instant) (types.BodyPosition, error) {
	if !a.Supports(body) {
		return types.BodyPosition{}, &UnsupportedBodyError{Body: body, Backend: analyticName}
	}

	lon, lat := analyticLongLat(body, at.JulianDay)
	earlier, _ := analyticLongLat(body, at.JulianDay-motionWindow)

	pos := types.BodyPosition{
		Body:      body,
		Longitude: lon,
		Latitude:  lat,
	}
	return withMotion(pos, earlier, motionWindow), nil
}

// Supports reports whether the analytic series cover body
func (a *Analytic) Supports(body types.Body) bool {
	_, ok := analyticBodies[body]
	return ok
}

var analyticBodies = map[types.Body]struct{}{
	types.Sun: {}, types.Moon: {}, types.Mercury: {}, types.Venus: {}, types.Mars: {},
	types.Jupiter: {}, types.Saturn: {}, types.Uranus: {}, types.Neptune: {}, types.Pluto: {},
	types.NorthNode: {},
}

func analyticLongLat(body types.Body, jd float64) (lon, lat float64) {
	d := jd - elementsEpochJD

	switch body {
	case types.Sun:
		x, y, _ := elementsByBody[types.Sun](d).position()
		return types.Norm360(atan2d(y, x)), 0
	case types.NorthNode:
		// mean node
		return types.Norm360(elementsByBody[types.Moon](d).N), 0
	case types.Moon:
		return moonLongLat(d)
	}

	var x, y, z float64
	if body == types.Pluto {
		x, y, z = plutoHeliocentric(d)
	} else {
		x, y, z = planetHeliocentric(body, d)
	}

	sx, sy, _ := elementsByBody[types.Sun](d).position()
	lon, lat, _ = spherical(x+sx, y+sy, z)
	return lon, lat
}

func planetHeliocentric(body types.Body, d float64) (x, y, z float64) {
	lon, lat, r := spherical(elementsByBody[body](d).position())

	mj := elementsByBody[types.Jupiter](d).M
	ms := elementsByBody[types.Saturn](d).M
	mu := elementsByBody[types.Uranus](d).M

	switch body {
	case types.Jupiter:
		lon += -0.332*sind(2*mj-5*ms-67.6) -
			0.056*sind(2*mj-2*ms+21) +
			0.042*sind(3*mj-5*ms+21) -
			0.036*sind(mj-2*ms) +
			0.022*cosd(mj-ms) +
			0.023*sind(2*mj-3*ms+52) -
			0.016*sind(mj-5*ms-69)
	case types.Saturn:
		lon += 0.812*sind(2*mj-5*ms-67.6) -
			0.229*cosd(2*mj-4*ms-2) +
			0.119*sind(mj-2*ms-3) +
			0.046*sind(2*mj-6*ms-69) +
			0.014*sind(mj-3*ms+32)
		lat += -0.020*cosd(2*mj-4*ms-2) +
			0.018*sind(2*mj-6*ms-49)
	case types.Uranus:
		lon += 0.040*sind(ms-2*mu+6) +
			0.035*sind(ms-3*mu+33) -
			0.015*sind(mj-mu+20)
	}

	return rectangular(lon, lat, r)
}

func moonLongLat(d float64) (lon, lat float64) {
	moon := elementsByBody[types.Moon](d)
	sun := elementsByBody[types.Sun](d)
	lon, lat, _ = spherical(moon.position())

	mm, ms := moon.M, sun.M
	ls := sun.M + sun.w
	lm := moon.M + moon.w + moon.N
	elong := lm - ls
	f := lm - moon.N

	lon += -1.274*sind(mm-2*elong) +
		0.658*sind(2*elong) -
		0.186*sind(ms) -
		0.059*sind(2*mm-2*elong) -
		0.057*sind(mm-2*elong+ms) +
		0.053*sind(mm+2*elong) +
		0.046*sind(2*elong-ms) +
		0.041*sind(mm-ms) -
		0.035*sind(elong) -
		0.031*sind(mm+ms) -
		0.015*sind(2*f-2*elong) +
		0.011*sind(mm-4*elong)
	lat += -0.173*sind(f-2*elong) -
		0.055*sind(mm-f-2*elong) -
		0.046*sind(mm+f-2*elong) +
		0.033*sind(f+2*elong) +
		0.017*sind(2*mm+f)

	return types.Norm360(lon), lat
}

// plutoHeliocentric evaluates the Pluto series, valid roughly 1800-2100
func plutoHeliocentric(d float64) (x, y, z float64) {
	s := 50.03 + 0.033459652*d
	p := 238.95 + 0.003968789*d

	lon := 238.9508 + 0.00400703*d -
		19.799*sind(p) + 19.848*cosd(p) +
		0.897*sind(2*p) - 4.956*cosd(2*p) +
		0.610*sind(3*p) + 1.211*cosd(3*p) -
		0.341*sind(4*p) - 0.190*cosd(4*p) +
		0.128*sind(5*p) - 0.034*cosd(5*p) -
		0.038*sind(6*p) + 0.031*cosd(6*p) +
		0.020*sind(s-p) - 0.010*cosd(s-p)
	lat := -3.9082 -
		5.453*sind(p) - 14.975*cosd(p) +
		3.527*sind(2*p) + 1.673*cosd(2*p) -
		1.051*sind(3*p) + 0.328*cosd(3*p) +
		0.179*sind(4*p) - 0.292*cosd(4*p) +
		0.019*sind(5*p) + 0.100*cosd(5*p) -
		0.031*sind(6*p) - 0.026*cosd(6*p) +
		0.011*cosd(s-p)
	r := 40.72 +
		6.68*sind(p) + 6.90*cosd(p) -
		1.18*sind(2*p) - 0.03*cosd(2*p) +
		0.15*sind(3*p) - 0.14*cosd(3*p)

	// series is referred to J2000; precess to the equinox of date
	lon += 3.82394e-5 * d

	return rectangular(lon, lat, r)
}

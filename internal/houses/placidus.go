package houses

import (
	"fmt"
	"math"

	"starluck/internal/types"
)

const (
	placidusTolerance = 1e-10
	placidusMaxIter   = 100
)

// placidusCusps trisects the diurnal semi-arc (houses 11, 12) and the
// nocturnal semi-arc (houses 2, 3) in time. Each intermediate cusp is the
// ecliptic point whose right ascension satisfies
//
//	RA = RAMC + f·(90° + AD)          above the horizon
//	RA = RAMC + 180° − f·(90° − AD)   below the horizon
//
// where AD is the point's ascensional difference. AD depends on the point,
// so RA is found by fixed-point iteration.
func placidusCusps(ramc, latitude, obliquity float64) ([12]float64, error) {
	var cusps [12]float64

	if math.Abs(latitude) >= 90-obliquity {
		return cusps, fmt.Errorf("%w: placidus undefined at latitude %.4f (polar limit %.4f)",
			ErrDegenerate, latitude, 90-obliquity)
	}

	c11, err := placidusCusp(ramc, latitude, obliquity, 1.0/3, false)
	if err != nil {
		return cusps, fmt.Errorf("house 11: %w", err)
	}
	c12, err := placidusCusp(ramc, latitude, obliquity, 2.0/3, false)
	if err != nil {
		return cusps, fmt.Errorf("house 12: %w", err)
	}
	c2, err := placidusCusp(ramc, latitude, obliquity, 2.0/3, true)
	if err != nil {
		return cusps, fmt.Errorf("house 2: %w", err)
	}
	c3, err := placidusCusp(ramc, latitude, obliquity, 1.0/3, true)
	if err != nil {
		return cusps, fmt.Errorf("house 3: %w", err)
	}

	asc := Ascendant(ramc, latitude, obliquity)
	mc := Midheaven(ramc, obliquity)

	cusps = [12]float64{
		asc, c2, c3,
		mc + 180, c11 + 180, c12 + 180,
		asc + 180, c2 + 180, c3 + 180,
		mc, c11, c12,
	}
	for i := range cusps {
		cusps[i] = types.Norm360(cusps[i])
	}
	return cusps, nil
}

// placidusCusp solves one intermediate cusp. f is the fraction of the
// semi-arc measured from the meridian (MC above, IC below).
func placidusCusp(ramc, latitude, obliquity, f float64, below bool) (float64, error) {
	tanPhi := math.Tan(rad(latitude))
	sinEps := math.Sin(rad(obliquity))

	raFor := func(ad float64) float64 {
		if below {
			return ramc + 180 - f*(90-ad)
		}
		return ramc + f*(90+ad)
	}

	ra := raFor(0)
	for range placidusMaxIter {
		lon := longitudeOfRA(ra, obliquity)
		dec := math.Asin(sinEps * math.Sin(rad(lon)))
		x := tanPhi * math.Tan(dec)
		if math.Abs(x) > 1 {
			return 0, fmt.Errorf("%w: no semi-arc solution at latitude %.4f", ErrDegenerate, latitude)
		}
		next := raFor(deg(math.Asin(x)))
		if math.Abs(next-ra) < placidusTolerance {
			return longitudeOfRA(next, obliquity), nil
		}
		ra = next
	}
	return 0, fmt.Errorf("%w: cusp iteration did not converge at latitude %.4f", ErrDegenerate, latitude)
}

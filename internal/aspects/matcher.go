// Package aspects finds angular relationships between body longitudes.
package aspects

import (
	"math"

	"starluck/internal/types"
)

// Match runs Within when b is nil and Between otherwise
func Match(a, b []Point, cfg Config) []Aspect {
	if b == nil {
		return Within(a, cfg)
	}
	return Between(a, b, cfg)
}

// Within matches every unordered pair of one point set, skipping
// self-pairs. Output follows input order: (0,1), (0,2), ..., (1,2), ...
func Within(points []Point, cfg Config) []Aspect {
	var out []Aspect
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if asp, ok := matchPair(points[i], points[j], cfg); ok {
				out = append(out, asp)
			}
		}
	}
	return out
}

// Between matches the full cross product of two point sets, including
// pairs of the same body. Output follows a-major input order.
func Between(a, b []Point, cfg Config) []Aspect {
	var out []Aspect
	for _, pa := range a {
		for _, pb := range b {
			if asp, ok := matchPair(pa, pb, cfg); ok {
				out = append(out, asp)
			}
		}
	}
	return out
}

// matchPair returns at most one aspect for the pair
func matchPair(a, b Point, cfg Config) (Aspect, bool) {
	sep := types.Separation(a.Longitude, b.Longitude)

	var best Aspect
	found := false
	for _, def := range cfg.Definitions {
		offset := sep - def.Type.Angle()
		orb := math.Abs(offset)
		if orb > cfg.maxOrb(def, a, b) {
			continue
		}
		if found && orb >= best.Orb {
			continue
		}
		best = Aspect{
			Body1:      a.Body,
			Body2:      b.Body,
			Type:       def.Type,
			Separation: sep,
			Orb:        orb,
			Offset:     offset,
		}
		found = true
	}
	return best, found
}

package aspects

import "starluck/internal/types"

// Definition is a candidate aspect with its maximum orb
type Definition struct {
	Type Type
	Orb  float64
}

// Config is the candidate aspect set. When two definitions match a pair,
// the smaller orb wins and an exact tie keeps the one listed first.
type Config struct {
	Definitions []Definition

	// OrbFor overrides Definition.Orb. a comes from the first point set.
	OrbFor func(def Definition, a, b Point) float64
}

func (c Config) maxOrb(def Definition, a, b Point) float64 {
	if c.OrbFor != nil {
		return c.OrbFor(def, a, b)
	}
	return def.Orb
}

var allTypes = []Type{
	Conjunction, Opposition, Trine, Square, Sextile,
	Quincunx, Semisextile, Semisquare, Sesquiquadrate,
	Quintile, Biquintile, Decile, Tredecile,
}

func definitionsFor(ts []Type) []Definition {
	defs := make([]Definition, len(ts))
	for i, t := range ts {
		defs[i] = Definition{Type: t, Orb: t.DefaultOrb()}
	}
	return defs
}

// MajorConfig matches the five Ptolemaic aspects with natal orbs
func MajorConfig() Config {
	var major []Type
	for _, t := range allTypes {
		if t.IsMajor() {
			major = append(major, t)
		}
	}
	return Config{Definitions: definitionsFor(major)}
}

// FullConfig matches all thirteen aspects with natal orbs
func FullConfig() Config {
	return Config{Definitions: definitionsFor(allTypes)}
}

const (
	transitOrb     = 0.8
	transitMoonOrb = 1.6
)

// TransitConfig matches all aspects with tight transit orbs, doubled for
// the fast-moving transiting Moon.
func TransitConfig() Config {
	cfg := FullConfig()
	for i := range cfg.Definitions {
		cfg.Definitions[i].Orb = transitOrb
	}
	cfg.OrbFor = func(def Definition, a, b Point) float64 {
		if a.Body == types.Moon {
			return transitMoonOrb
		}
		return def.Orb
	}
	return cfg
}

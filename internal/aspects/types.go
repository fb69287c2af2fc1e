package aspects

import (
	"fmt"

	"starluck/internal/types"
)

// Type is an angular relationship between two points
type Type int

const (
	Conjunction Type = iota
	Semisextile
	Decile
	Semisquare
	Sextile
	Quintile
	Square
	Tredecile
	Trine
	Sesquiquadrate
	Biquintile
	Quincunx
	Opposition
)

type typeInfo struct {
	name  string
	glyph string
	angle float64
	orb   float64
}

var typeTable = map[Type]typeInfo{
	Conjunction:    {"Conjunction", "☌", 0, 8},
	Semisextile:    {"Semisextile", "⚺", 30, 2},
	Decile:         {"Decile", "", 36, 1.5},
	Semisquare:     {"Semisquare", "∠", 45, 2},
	Sextile:        {"Sextile", "⚹", 60, 4},
	Quintile:       {"Quintile", "Q", 72, 2},
	Square:         {"Square", "□", 90, 6},
	Tredecile:      {"Tredecile", "", 108, 1.5},
	Trine:          {"Trine", "△", 120, 6},
	Sesquiquadrate: {"Sesquiquadrate", "⚼", 135, 2},
	Biquintile:     {"Biquintile", "bQ", 144, 1.5},
	Quincunx:       {"Quincunx", "⚻", 150, 3},
	Opposition:     {"Opposition", "☍", 180, 8},
}

func (t Type) String() string {
	if info, ok := typeTable[t]; ok {
		return info.name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Glyph returns the aspect symbol, empty for aspects without one
func (t Type) Glyph() string {
	return typeTable[t].glyph
}

// Angle returns the exact angle of the aspect in degrees
func (t Type) Angle() float64 {
	return typeTable[t].angle
}

// DefaultOrb returns the natal orb allowance for the aspect
func (t Type) DefaultOrb() float64 {
	return typeTable[t].orb
}

// IsMajor reports whether t is one of the five Ptolemaic aspects
func (t Type) IsMajor() bool {
	switch t {
	case Conjunction, Sextile, Square, Trine, Opposition:
		return true
	}
	return false
}

// Point is a body longitude fed to the matcher
type Point struct {
	Body      types.Body
	Longitude float64
}

// PointsOf converts resolved positions to matcher input, keeping order
func PointsOf(positions []types.BodyPosition) []Point {
	points := make([]Point, len(positions))
	for i, pos := range positions {
		points[i] = Point{Body: pos.Body, Longitude: pos.Longitude}
	}
	return points
}

// Aspect is one matched relationship. Orb is the absolute deviation from
// the exact angle; Offset keeps its sign (separation minus angle).
type Aspect struct {
	Body1      types.Body
	Body2      types.Body
	Type       Type
	Separation float64
	Orb        float64
	Offset     float64
}

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBody is returned when a body name cannot be parsed
var ErrUnknownBody = errors.New("unknown body")

// Body identifies a chart point with an ecliptic position
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	NorthNode
	Chiron
	// PartOfFortune is derived from the Sun, Moon and Ascendant. Ephemeris
	// providers never supply it.
	PartOfFortune
)

var bodyNames = map[Body]string{
	Sun:           "Sun",
	Moon:          "Moon",
	Mercury:       "Mercury",
	Venus:         "Venus",
	Mars:          "Mars",
	Jupiter:       "Jupiter",
	Saturn:        "Saturn",
	Uranus:        "Uranus",
	Neptune:       "Neptune",
	Pluto:         "Pluto",
	NorthNode:     "NorthNode",
	Chiron:        "Chiron",
	PartOfFortune: "PartOfFortune",
}

var bodyGlyphs = map[Body]string{
	Sun:           "☉",
	Moon:          "☽",
	Mercury:       "☿",
	Venus:         "♀",
	Mars:          "♂",
	Jupiter:       "♃",
	Saturn:        "♄",
	Uranus:        "♅",
	Neptune:       "♆",
	Pluto:         "♇",
	NorthNode:     "☊",
	Chiron:        "⚷",
	PartOfFortune: "⊕",
}

// DefaultBodies is the body set of a natal chart when none is requested,
// in chart order.
var DefaultBodies = []Body{
	Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto, NorthNode,
}

func (b Body) String() string {
	if name, ok := bodyNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Body(%d)", int(b))
}

// Glyph returns the unicode symbol for the body
func (b Body) Glyph() string {
	return bodyGlyphs[b]
}

// ParseBody resolves a body name case-insensitively. "TrueNode" and
// "Node" are accepted for the north node.
func ParseBody(s string) (Body, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "_", "")

	switch normalized {
	case "truenode", "meannode", "node":
		return NorthNode, nil
	case "pof", "fortune":
		return PartOfFortune, nil
	}
	for body, name := range bodyNames {
		if strings.ToLower(name) == normalized {
			return body, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBody, s)
}

package types

import "math"

// Sign is a 30° zodiac segment, Aries = 0 through Pisces = 11
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signGlyphs = [12]string{
	"♈", "♉", "♊", "♋", "♌", "♍", "♎", "♏", "♐", "♑", "♒", "♓",
}

func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return "Unknown"
	}
	return signNames[s]
}

// Glyph returns the unicode symbol for the sign
func (s Sign) Glyph() string {
	if s < Aries || s > Pisces {
		return ""
	}
	return signGlyphs[s]
}

// Start returns the longitude of the sign's first degree
func (s Sign) Start() float64 {
	return float64(s) * 30
}

// SignOf returns the sign containing the given longitude
func SignOf(longitude float64) Sign {
	return Sign(int(math.Floor(Norm360(longitude)/30)) % 12)
}

// DegreesInSign returns the offset of a longitude from the start of its sign
func DegreesInSign(longitude float64) float64 {
	lon := Norm360(longitude)
	return lon - SignOf(lon).Start()
}

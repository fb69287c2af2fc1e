package types

// BodyPosition is a geocentric ecliptic position of a body at one instant
type BodyPosition struct {
	Body       Body
	Longitude  float64 // degrees, [0, 360)
	Latitude   float64 // degrees
	Speed      float64 // degrees per day, negative when retrograde
	Retrograde bool
}

// Sign returns the zodiac sign of the position
func (p BodyPosition) Sign() Sign {
	return SignOf(p.Longitude)
}

// DegreesInSign returns the position's offset within its sign
func (p BodyPosition) DegreesInSign() float64 {
	return DegreesInSign(p.Longitude)
}

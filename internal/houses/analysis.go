package houses

import (
	"math"

	"starluck/internal/types"
)

// HouseOf returns the house (1..12) containing longitude. A longitude
// belongs to house k when it lies in [cusp k, cusp k+1) in zodiac order.
func (r Result) HouseOf(longitude float64) int {
	best, bestOffset := 1, math.Inf(1)
	for i, cusp := range r.Cusps {
		offset := types.Norm360(longitude - cusp)
		if offset < bestOffset {
			best, bestOffset = i+1, offset
		}
	}
	return best
}

// CuspSigns returns the sign on each cusp, house 1 first
func (r Result) CuspSigns() [12]types.Sign {
	var signs [12]types.Sign
	for i, cusp := range r.Cusps {
		signs[i] = types.SignOf(cusp)
	}
	return signs
}

// InterceptedSigns returns the signs that hold no cusp, in zodiac order
func (r Result) InterceptedSigns() []types.Sign {
	var onCusp [12]bool
	for _, sign := range r.CuspSigns() {
		onCusp[sign] = true
	}

	var intercepted []types.Sign
	for sign := types.Aries; sign <= types.Pisces; sign++ {
		if !onCusp[sign] {
			intercepted = append(intercepted, sign)
		}
	}
	return intercepted
}

// SignSegment is the part of a house that falls in one sign
type SignSegment struct {
	Sign    types.Sign
	Degrees float64
	Percent float64
}

// HouseSigns describes how a house's arc is split across signs
type HouseSigns struct {
	House    int
	Span     float64
	Segments []SignSegment
}

// SignBreakdown splits every house arc at sign boundaries
func (r Result) SignBreakdown() []HouseSigns {
	breakdown := make([]HouseSigns, 0, 12)
	for i, start := range r.Cusps {
		span := types.Norm360(r.Cusps[(i+1)%12] - start)
		end := start + span

		house := HouseSigns{House: i + 1, Span: span}
		cursor := start
		for cursor < end {
			signIndex := math.Floor(cursor / 30)
			boundary := math.Min((signIndex+1)*30, end)
			degrees := boundary - cursor
			percent := 0.0
			if span > 0 {
				percent = degrees / span * 100
			}
			house.Segments = append(house.Segments, SignSegment{
				Sign:    types.Sign(int(signIndex) % 12),
				Degrees: degrees,
				Percent: percent,
			})
			cursor = boundary
		}
		breakdown = append(breakdown, house)
	}
	return breakdown
}

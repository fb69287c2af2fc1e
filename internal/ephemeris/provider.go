// Package ephemeris resolves geocentric ecliptic positions of chart bodies.
// Everything downstream depends on the Provider interface only; the
// analytic and table backends are interchangeable behind it.
package ephemeris

import (
	"errors"
	"fmt"

	"starluck/internal/astro"
	"starluck/internal/types"
)

var (
	// ErrUnsupportedBody is matched by every *UnsupportedBodyError
	ErrUnsupportedBody = errors.New("unsupported body")
	// ErrOutOfRange is returned when a table backend has no rows around an instant
	ErrOutOfRange = errors.New("instant outside ephemeris range")
)

// Provider supplies body positions. Implementations must be safe for
// concurrent use.
type Provider interface {
	// Name identifies the backend in logs and health output
	Name() string

	// Position returns the geocentric ecliptic position of body at the instant
	Position(body types.Body, at astro.Instant) (types.BodyPosition, error)
}

// UnsupportedBodyError reports a body the active backend cannot resolve
type UnsupportedBodyError struct {
	Body    types.Body
	Backend string
}

func (e *UnsupportedBodyError) Error() string {
	return fmt.Sprintf("%s: %s backend cannot resolve %s", ErrUnsupportedBody, e.Backend, e.Body)
}

func (e *UnsupportedBodyError) Is(target error) bool {
	return target == ErrUnsupportedBody
}

// Positions resolves bodies in order. The first failure aborts the whole
// lookup; no partial result is returned.
func Positions(p Provider, bodies []types.Body, at astro.Instant) ([]types.BodyPosition, error) {
	positions := make([]types.BodyPosition, 0, len(bodies))
	for _, body := range bodies {
		pos, err := p.Position(body, at)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", body, err)
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

// motionWindow is the finite-difference span used for daily speed, in days
const motionWindow = 10.0 / 1440.0

// withMotion fills speed and retrograde from an earlier longitude sampled
// span days before pos.
func withMotion(pos types.BodyPosition, earlierLongitude, span float64) types.BodyPosition {
	pos.Speed = types.SignedDelta(earlierLongitude, pos.Longitude) / span
	pos.Retrograde = pos.Speed < 0
	return pos
}

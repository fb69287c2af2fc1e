package astro

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // historical zone rules independent of the host

	"starluck/internal/types"
)

// ErrInvalidTime is returned for an unparsable date-time or unknown timezone
var ErrInvalidTime = errors.New("invalid time")

// Accepted civil date-time layouts, tried in order. A value carrying an
// explicit UTC offset (RFC 3339) is honored as written.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Frame is the astronomical reference frame of one chart: the instant, the
// observer, and the sidereal quantities derived from both.
type Frame struct {
	Instant   Instant
	Local     time.Time // Instant in the observer's zone
	Timezone  string
	Location  types.GeoLocation
	GMST      float64 // degrees
	LST       float64 // degrees, equal to RAMC
	Obliquity float64 // degrees
}

// LoadZone resolves an IANA timezone name. The empty name and "Local" are
// rejected so results never depend on the host's zone.
func LoadZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: timezone %q is not an IANA zone name", ErrInvalidTime, name)
	}
	zone, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidTime, name)
	}
	return zone, nil
}

// ParseLocal parses a civil date-time in the named zone using that zone's
// historical offset rules. Wall times skipped by a DST transition are
// normalized forward by time.Date.
func ParseLocal(value, timezone string) (time.Time, error) {
	zone, err := LoadZone(timezone)
	if err != nil {
		return time.Time{}, err
	}

	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(zone), nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, zone); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse date-time %q", ErrInvalidTime, value)
}

// Resolve converts a local date-time string, timezone name and observer
// location into a Frame.
func Resolve(localDateTime, timezone string, location types.GeoLocation) (Frame, error) {
	t, err := ParseLocal(localDateTime, timezone)
	if err != nil {
		return Frame{}, err
	}
	return NewFrame(t, timezone, location)
}

// NewFrame builds a Frame for an absolute time observed from location.
// The timezone only determines the Local field.
func NewFrame(t time.Time, timezone string, location types.GeoLocation) (Frame, error) {
	zone, err := LoadZone(timezone)
	if err != nil {
		return Frame{}, err
	}
	if err := location.Validate(); err != nil {
		return Frame{}, err
	}

	instant := NewInstant(t)
	gmst := instant.GMST()
	return Frame{
		Instant:   instant,
		Local:     instant.UTC.In(zone),
		Timezone:  zone.String(),
		Location:  location,
		GMST:      gmst,
		LST:       types.Norm360(gmst + location.Longitude),
		Obliquity: MeanObliquity(instant.JulianDay),
	}, nil
}

// At returns the same observer frame moved to another instant
func (f Frame) At(t time.Time) Frame {
	instant := NewInstant(t)
	gmst := instant.GMST()
	f.Instant = instant
	f.Local = instant.UTC.In(f.Local.Location())
	f.GMST = gmst
	f.LST = types.Norm360(gmst + f.Location.Longitude)
	f.Obliquity = MeanObliquity(instant.JulianDay)
	return f
}

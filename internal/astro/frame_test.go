package astro

import (
	"errors"
	"math"
	"testing"
	"time"

	"starluck/internal/types"
)

var newYork = types.NewGeoLocation(40.7128, -74.0060, 10)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		local    string
		timezone string
		wantUTC  time.Time
	}{
		{
			name:     "winter standard time",
			local:    "1990-01-01 12:00",
			timezone: "America/New_York",
			wantUTC:  time.Date(1990, 1, 1, 17, 0, 0, 0, time.UTC),
		},
		{
			name:     "summer daylight time",
			local:    "2021-07-01T12:00:00",
			timezone: "America/New_York",
			wantUTC:  time.Date(2021, 7, 1, 16, 0, 0, 0, time.UTC),
		},
		{
			name:     "explicit offset wins",
			local:    "1990-01-01T12:00:00-05:00",
			timezone: "Europe/London",
			wantUTC:  time.Date(1990, 1, 1, 17, 0, 0, 0, time.UTC),
		},
		{
			name:     "date only is local midnight",
			local:    "2000-01-01",
			timezone: "Asia/Tokyo",
			wantUTC:  time.Date(1999, 12, 31, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "historical offset",
			local:    "1950-06-15 12:00",
			timezone: "Europe/London",
			wantUTC:  time.Date(1950, 6, 15, 11, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := Resolve(tt.local, tt.timezone, newYork)
			if err != nil {
				t.Fatalf("Resolve() unexpected error = %v", err)
			}
			if !frame.Instant.UTC.Equal(tt.wantUTC) {
				t.Errorf("Resolve() UTC = %v, want %v", frame.Instant.UTC, tt.wantUTC)
			}
			if frame.Timezone != tt.timezone {
				t.Errorf("Resolve() Timezone = %q, want %q", frame.Timezone, tt.timezone)
			}
		})
	}
}

func TestResolve_SiderealQuantities(t *testing.T) {
	frame, err := Resolve("1990-01-01 12:00", "America/New_York", newYork)
	if err != nil {
		t.Fatalf("Resolve() unexpected error = %v", err)
	}

	if math.Abs(frame.Instant.JulianDay-2447893.2083333) > 1e-6 {
		t.Errorf("JulianDay = %v, want 2447893.2083333", frame.Instant.JulianDay)
	}
	if math.Abs(frame.LST-282.0757838) > 1e-5 {
		t.Errorf("LST = %v, want 282.0757838", frame.LST)
	}
	if math.Abs(frame.Obliquity-23.4405913) > 1e-6 {
		t.Errorf("Obliquity = %v, want 23.4405913", frame.Obliquity)
	}
	if frame.Local.Hour() != 12 {
		t.Errorf("Local hour = %d, want 12", frame.Local.Hour())
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name     string
		local    string
		timezone string
		location types.GeoLocation
		wantErr  error
	}{
		{"unparsable date", "first of january", "America/New_York", newYork, ErrInvalidTime},
		{"impossible date", "1990-02-30 12:00", "America/New_York", newYork, ErrInvalidTime},
		{"unknown timezone", "1990-01-01 12:00", "Mars/Olympus_Mons", newYork, ErrInvalidTime},
		{"empty timezone", "1990-01-01 12:00", "", newYork, ErrInvalidTime},
		{"host local zone", "1990-01-01 12:00", "Local", newYork, ErrInvalidTime},
		{"latitude out of range", "1990-01-01 12:00", "UTC", types.NewGeoLocation(91, 0, 0), types.ErrInvalidLocation},
		{"longitude out of range", "1990-01-01 12:00", "UTC", types.NewGeoLocation(0, -200, 0), types.ErrInvalidLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.local, tt.timezone, tt.location)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Resolve() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFrame_At(t *testing.T) {
	frame, err := Resolve("1990-01-01 12:00", "America/New_York", newYork)
	if err != nil {
		t.Fatalf("Resolve() unexpected error = %v", err)
	}

	later := frame.At(frame.Instant.UTC.Add(24 * time.Hour))
	if later.Local.Location().String() != "America/New_York" {
		t.Errorf("At() zone = %v, want America/New_York", later.Local.Location())
	}
	if later.Location != frame.Location {
		t.Errorf("At() changed the observer location")
	}
	// one solar day advances sidereal time by roughly 0.9856 degrees
	advance := types.SignedDelta(frame.LST, later.LST)
	if math.Abs(advance-0.98565) > 1e-4 {
		t.Errorf("LST advance over one day = %v, want ~0.98565", advance)
	}
}

func TestAltitude(t *testing.T) {
	tests := []struct {
		name     string
		ra, dec  float64
		lst, lat float64
		expected float64
	}{
		{"zenith", 100, 40, 100, 40, 90},
		{"equator on horizon", 0, 0, 90, 0, 0},
		{"pole star height equals latitude", 0, 90, 0, 51.5, 51.5},
		{"lower culmination", 0, 0, 180, 0, -90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Altitude(tt.ra, tt.dec, tt.lst, tt.lat)
			if math.Abs(result-tt.expected) > 1e-5 {
				t.Errorf("Altitude() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestEclipticToEquatorial(t *testing.T) {
	tests := []struct {
		name      string
		longitude float64
		wantRA    float64
		wantDec   float64
	}{
		{"vernal point", 0, 0, 0},
		{"summer solstice", 90, 90, 23.4392911},
		{"autumnal point", 180, 180, 0},
		{"winter solstice", 270, 270, -23.4392911},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ra, dec := EclipticToEquatorial(tt.longitude, 0, 23.4392911)
			if types.Separation(ra, tt.wantRA) > 1e-9 {
				t.Errorf("EclipticToEquatorial() ra = %v, want %v", ra, tt.wantRA)
			}
			if math.Abs(dec-tt.wantDec) > 1e-9 {
				t.Errorf("EclipticToEquatorial() dec = %v, want %v", dec, tt.wantDec)
			}
		})
	}
}

package location

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"starluck/internal/types"
)

// Mock providers for testing

type mockTimezoneProvider struct {
	timezone string
	err      error
	calls    int
}

func (m *mockTimezoneProvider) GetTimezone(latitude, longitude float64) (string, error) {
	m.calls++
	return m.timezone, m.err
}

func TestLocationService_Resolve(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name         string
		lat          float64
		lon          float64
		elevation    float64
		timezone     string
		tzResponse   string
		tzErr        error
		wantErr      error
		errContains  string
		wantTimezone string
		wantLookup   bool
	}{
		{
			name:         "timezone supplied by caller",
			lat:          40.7128,
			lon:          -74.0060,
			elevation:    10,
			timezone:     "America/New_York",
			wantTimezone: "America/New_York",
			wantLookup:   false,
		},
		{
			name:         "timezone looked up from coordinates",
			lat:          39.11539,
			lon:          -107.65840,
			elevation:    2743.5,
			tzResponse:   "America/Denver",
			wantTimezone: "America/Denver",
			wantLookup:   true,
		},
		{
			name:         "blank timezone is looked up",
			lat:          51.5074,
			lon:          -0.1278,
			timezone:     "   ",
			tzResponse:   "Europe/London",
			wantTimezone: "Europe/London",
			wantLookup:   true,
		},
		{
			name:        "timezone provider error",
			lat:         0,
			lon:         -140,
			tzErr:       errors.New("could not determine timezone"),
			errContains: "failed to determine timezone",
			wantLookup:  true,
		},
		{
			name:     "latitude out of range",
			lat:      95,
			lon:      0,
			timezone: "UTC",
			wantErr:  ErrInvalidLatitude,
		},
		{
			name:     "longitude out of range",
			lat:      0,
			lon:      -181,
			timezone: "UTC",
			wantErr:  ErrInvalidLongitude,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockTimezoneProvider{timezone: tt.tzResponse, err: tt.tzErr}
			service := NewLocationServiceWithProviders(provider, logger)

			got, err := service.Resolve(tt.lat, tt.lon, tt.elevation, tt.timezone)

			if (provider.calls > 0) != tt.wantLookup {
				t.Errorf("timezone lookups = %d, wantLookup %v", provider.calls, tt.wantLookup)
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				if !errors.Is(err, types.ErrInvalidLocation) {
					t.Errorf("Resolve() error = %v, want it to match types.ErrInvalidLocation", err)
				}
				return
			}
			if tt.errContains != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Resolve() error = %v, want error containing %v", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("Resolve() unexpected error = %v", err)
			}
			if got.Timezone != tt.wantTimezone {
				t.Errorf("Timezone = %v, want %v", got.Timezone, tt.wantTimezone)
			}
			if got.TimezoneFromCoordinates != tt.wantLookup {
				t.Errorf("TimezoneFromCoordinates = %v, want %v", got.TimezoneFromCoordinates, tt.wantLookup)
			}
			if got.Location.Latitude != tt.lat || got.Location.Longitude != tt.lon {
				t.Errorf("Location = %+v, want lat %v lon %v", got.Location, tt.lat, tt.lon)
			}
			if got.Location.Elevation.Meters != tt.elevation {
				t.Errorf("Elevation.Meters = %v, want %v", got.Location.Elevation.Meters, tt.elevation)
			}
		})
	}
}

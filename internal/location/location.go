package location

import (
	"fmt"
	"log/slog"
	"strings"

	"starluck/internal/timezone"
	"starluck/internal/types"
)

var (
	ErrInvalidLatitude  = fmt.Errorf("%w: latitude must be between -90 and 90", types.ErrInvalidLocation)
	ErrInvalidLongitude = fmt.Errorf("%w: longitude must be between -180 and 180", types.ErrInvalidLocation)
)

// Observer is a validated chart location with its timezone
type Observer struct {
	Location types.GeoLocation
	Timezone string
	// TimezoneFromCoordinates is true when the timezone was looked up
	// rather than supplied by the caller
	TimezoneFromCoordinates bool
}

// Service validates observer coordinates and fills in a missing timezone
type Service interface {
	Resolve(latitude, longitude, elevationMeters float64, timezone string) (*Observer, error)
}

// locationService implements the Service interface
type locationService struct {
	timezoneProvider TimezoneProvider
	logger           *slog.Logger
}

// NewLocationService creates a location service backed by the tzf timezone finder
func NewLocationService(logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewLocationServiceWithProviders(tzSvc, logger), nil
}

// NewLocationServiceWithProviders creates a location service with a custom
// timezone provider. This is useful for testing with mock providers
func NewLocationServiceWithProviders(timezoneProvider TimezoneProvider, logger *slog.Logger) Service {
	return &locationService{
		timezoneProvider: timezoneProvider,
		logger:           logger.With("component", "location-service"),
	}
}

// Resolve validates the coordinates and, when tz is empty, looks up the
// timezone containing them
func (s *locationService) Resolve(latitude, longitude, elevationMeters float64, tz string) (*Observer, error) {
	if err := validateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}

	observer := &Observer{
		Location: types.NewGeoLocation(latitude, longitude, elevationMeters),
		Timezone: strings.TrimSpace(tz),
	}
	if observer.Timezone != "" {
		return observer, nil
	}

	found, err := s.timezoneProvider.GetTimezone(latitude, longitude)
	if err != nil {
		s.logger.Error("failed to determine timezone",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to determine timezone: %w", err)
	}

	s.logger.Debug("determined timezone for location",
		"latitude", latitude,
		"longitude", longitude,
		"timezone", found,
	)
	observer.Timezone = found
	observer.TimezoneFromCoordinates = true
	return observer, nil
}

func validateCoordinates(latitude, longitude float64) error {
	if err := (types.GeoLocation{Latitude: latitude}).Validate(); err != nil {
		return fmt.Errorf("%w: got %f", ErrInvalidLatitude, latitude)
	}
	if err := (types.GeoLocation{Longitude: longitude}).Validate(); err != nil {
		return fmt.Errorf("%w: got %f", ErrInvalidLongitude, longitude)
	}
	return nil
}

package timezone

import (
	"fmt"
	"math"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/ringsaturn/tzf"
)

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	once     sync.Once
	initErr  error
)

// NewService creates or returns the singleton timezone service.
// tzf.Finder loads the polygon data into memory (~50MB), so it is built once.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for the given coordinates,
// like "America/New_York". Points outside every polygon get the nautical
// zone for their longitude ("Etc/GMT+5"). The name is checked against the
// embedded zone database so callers can load it.
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	s.mu.RLock()
	name := s.finder.GetTimezoneName(longitude, latitude)
	s.mu.RUnlock()

	if name == "" {
		name = NauticalZone(longitude)
	}
	if _, err := time.LoadLocation(name); err != nil {
		return "", fmt.Errorf("could not load timezone %q for coordinates lat=%f, lon=%f: %w", name, latitude, longitude, err)
	}
	return name, nil
}

// NauticalZone returns the Etc/GMT zone of a longitude. POSIX signs are
// inverted: 75°W is "Etc/GMT+5".
func NauticalZone(longitude float64) string {
	offset := int(math.Round(longitude / 15))
	switch {
	case offset == 0:
		return "Etc/GMT"
	case offset > 0:
		return fmt.Sprintf("Etc/GMT-%d", offset)
	default:
		return fmt.Sprintf("Etc/GMT+%d", -offset)
	}
}

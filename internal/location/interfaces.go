package location

// TimezoneProvider resolves the IANA timezone containing a coordinate
type TimezoneProvider interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

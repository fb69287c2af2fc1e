package houses

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDegenerate is returned when a house system has no real solution
	// for the observer's latitude
	ErrDegenerate = errors.New("degenerate house system")
	// ErrUnknownSystem is returned when a house system name cannot be parsed
	ErrUnknownSystem = errors.New("unknown house system")
)

// System is a house division strategy
type System int

const (
	WholeSign System = iota
	Placidus
	Equal
)

var systemNames = map[System]string{
	WholeSign: "WHOLE",
	Placidus:  "PLACIDUS",
	Equal:     "EQUAL",
}

func (s System) String() string {
	if name, ok := systemNames[s]; ok {
		return name
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// ParseSystem accepts WHOLE, PLACIDUS and EQUAL in any case, plus common
// spellings such as "whole_sign" and single-letter codes.
func ParseSystem(s string) (System, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WHOLE", "WHOLE_SIGN", "WHOLESIGN", "WHOLE SIGN", "W":
		return WholeSign, nil
	case "PLACIDUS", "P":
		return Placidus, nil
	case "EQUAL", "E":
		return Equal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, s)
	}
}

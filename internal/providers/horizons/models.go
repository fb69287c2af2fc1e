package horizons

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type EphemerisAPIResponse struct {
	Signature struct {
		Source  string `json:"source"`
		Version string `json:"version"`
	} `json:"signature"`
	Result string `json:"result"`
	Error  string `json:"error,omitempty"`
}

// Sample is one row of an observer table
type Sample struct {
	JulianDay float64
	Longitude float64
	Latitude  float64
}

const (
	startOfEphemeris = "$$SOE"
	endOfEphemeris   = "$$EOE"
)

var ErrNoEphemeris = errors.New("result holds no $$SOE/$$EOE block")

// ParseObserverTable reads the CSV rows between $$SOE and $$EOE of a
// quantity-31 table with CAL_FORMAT=JD. Each row is
// "JD, solar flag, lunar flag, ObsEcLon, ObsEcLat,".
func ParseObserverTable(result string) ([]Sample, error) {
	var samples []Sample
	inTable, sawTable := false, false

	scanner := bufio.NewScanner(strings.NewReader(result))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == startOfEphemeris:
			inTable, sawTable = true, true
			continue
		case line == endOfEphemeris:
			inTable = false
			continue
		case !inTable || line == "":
			continue
		}

		sample, err := parseRow(line)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read result: %w", err)
	}
	if !sawTable {
		return nil, ErrNoEphemeris
	}
	return samples, nil
}

func parseRow(line string) (Sample, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 5 {
		return Sample{}, fmt.Errorf("row %q has %d fields, want at least 5", line, len(fields))
	}

	values := make([]float64, 0, 3)
	for _, i := range []int{0, 3, 4} {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return Sample{}, fmt.Errorf("row %q field %d: %w", line, i, err)
		}
		values = append(values, v)
	}
	return Sample{JulianDay: values[0], Longitude: values[1], Latitude: values[2]}, nil
}

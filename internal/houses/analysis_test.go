package houses

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"starluck/internal/types"
)

func TestResult_HouseOf(t *testing.T) {
	whole, err := compute(WholeSign, nycRAMC, nycLatitude, nycObliquity)
	if err != nil {
		t.Fatalf("compute() unexpected error = %v", err)
	}
	placidus, err := compute(Placidus, nycRAMC, nycLatitude, nycObliquity)
	if err != nil {
		t.Fatalf("compute() unexpected error = %v", err)
	}

	tests := []struct {
		name      string
		result    Result
		longitude float64
		expected  int
	}{
		{"whole sign first degree", whole, 0, 1},
		{"whole sign end of house", whole, 29.999, 1},
		{"whole sign on cusp belongs to next house", whole, 30, 2},
		{"whole sign last house", whole, 359.5, 12},
		{"placidus on ascendant", placidus, placidus.Angles.ASC, 1},
		{"placidus just before ascendant", placidus, 19, 12},
		{"placidus midheaven", placidus, 281.2, 10},
		{"placidus wrapped input", placidus, 360 + 60, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.result.HouseOf(tt.longitude); result != tt.expected {
				t.Errorf("HouseOf(%v) = %d, want %d", tt.longitude, result, tt.expected)
			}
		})
	}
}

func TestResult_InterceptedSigns(t *testing.T) {
	tests := []struct {
		name     string
		ramc     float64
		latitude float64
		want     []types.Sign
	}{
		{"new york has none", nycRAMC, nycLatitude, nil},
		{"sixty north", 45, 60, []types.Sign{types.Gemini, types.Sagittarius}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := compute(Placidus, tt.ramc, tt.latitude, 23.44)
			if err != nil {
				t.Fatalf("compute() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, result.InterceptedSigns()); diff != "" {
				t.Errorf("InterceptedSigns() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResult_CuspSigns(t *testing.T) {
	result, err := compute(Placidus, nycRAMC, nycLatitude, nycObliquity)
	if err != nil {
		t.Fatalf("compute() unexpected error = %v", err)
	}

	want := [12]types.Sign{
		types.Aries, types.Taurus, types.Gemini, types.Cancer, types.Leo, types.Virgo,
		types.Libra, types.Scorpio, types.Sagittarius, types.Capricorn, types.Aquarius, types.Pisces,
	}
	if got := result.CuspSigns(); got != want {
		t.Errorf("CuspSigns() = %v, want %v", got, want)
	}
}

func TestResult_SignBreakdown(t *testing.T) {
	for _, system := range []System{WholeSign, Placidus, Equal} {
		t.Run(system.String(), func(t *testing.T) {
			result, err := compute(system, nycRAMC, nycLatitude, nycObliquity)
			if err != nil {
				t.Fatalf("compute() unexpected error = %v", err)
			}

			breakdown := result.SignBreakdown()
			if len(breakdown) != 12 {
				t.Fatalf("SignBreakdown() returned %d houses, want 12", len(breakdown))
			}

			total := 0.0
			for _, house := range breakdown {
				degrees, percent := 0.0, 0.0
				for _, seg := range house.Segments {
					degrees += seg.Degrees
					percent += seg.Percent
				}
				if math.Abs(degrees-house.Span) > 1e-9 {
					t.Errorf("house %d segments sum to %v, span %v", house.House, degrees, house.Span)
				}
				if math.Abs(percent-100) > 1e-9 {
					t.Errorf("house %d percents sum to %v", house.House, percent)
				}
				if system == WholeSign && len(house.Segments) != 1 {
					t.Errorf("whole sign house %d spans %d signs, want 1", house.House, len(house.Segments))
				}
				total += house.Span
			}
			if math.Abs(total-360) > 1e-9 {
				t.Errorf("house spans sum to %v, want 360", total)
			}
		})
	}
}

func TestResult_SignBreakdown_Placidus(t *testing.T) {
	result, err := compute(Placidus, nycRAMC, nycLatitude, nycObliquity)
	if err != nil {
		t.Fatalf("compute() unexpected error = %v", err)
	}

	first := result.SignBreakdown()[0]
	if len(first.Segments) != 2 {
		t.Fatalf("house 1 segments = %d, want 2", len(first.Segments))
	}
	if first.Segments[0].Sign != types.Aries || first.Segments[1].Sign != types.Taurus {
		t.Errorf("house 1 signs = %v, %v, want Aries, Taurus", first.Segments[0].Sign, first.Segments[1].Sign)
	}
	if math.Abs(first.Segments[0].Degrees-(30-result.Angles.ASC)) > 1e-9 {
		t.Errorf("house 1 Aries degrees = %v, want %v", first.Segments[0].Degrees, 30-result.Angles.ASC)
	}
}

package houses

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"starluck/internal/astro"
	"starluck/internal/types"
)

// New York, 1990-01-01 12:00 EST
const (
	nycRAMC      = 282.0757838
	nycLatitude  = 40.7128
	nycObliquity = 23.4405913
)

func cuspsEqual(t *testing.T, got [12]float64, want []float64, tolerance float64) {
	t.Helper()
	opt := cmp.Comparer(func(a, b float64) bool {
		return types.Separation(a, b) <= tolerance
	})
	if diff := cmp.Diff(want, got[:], opt); diff != "" {
		t.Errorf("cusps mismatch (-want +got):\n%s", diff)
	}
}

func TestAngles(t *testing.T) {
	tests := []struct {
		name      string
		ramc      float64
		latitude  float64
		obliquity float64
		wantASC   float64
		wantMC    float64
	}{
		{"new york natal", nycRAMC, nycLatitude, nycObliquity, 20.6587, 281.1050},
		{"equator at aries point", 0, 0, 23.44, 90, 0},
		{"ramc 90", 90, 0, 23.44, 180, 90},
		{"ramc 180", 180, 0, 23.44, 270, 180},
		{"ramc 270", 270, 0, 23.44, 0, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asc := Ascendant(tt.ramc, tt.latitude, tt.obliquity)
			mc := Midheaven(tt.ramc, tt.obliquity)
			if types.Separation(asc, tt.wantASC) > 1e-3 {
				t.Errorf("Ascendant() = %v, want %v", asc, tt.wantASC)
			}
			if types.Separation(mc, tt.wantMC) > 1e-3 {
				t.Errorf("Midheaven() = %v, want %v", mc, tt.wantMC)
			}
		})
	}
}

func TestCompute_Placidus(t *testing.T) {
	tests := []struct {
		name      string
		ramc      float64
		latitude  float64
		obliquity float64
		want      []float64
	}{
		{
			name:      "new york natal",
			ramc:      nycRAMC,
			latitude:  nycLatitude,
			obliquity: nycObliquity,
			want:      []float64{20.659, 56.070, 80.113, 101.105, 123.918, 154.466, 200.659, 236.070, 260.113, 281.105, 303.918, 334.466},
		},
		{
			name:      "equator",
			ramc:      0,
			latitude:  0,
			obliquity: 23.4392911,
			want:      []float64{90, 117.911, 147.819, 180, 212.181, 242.089, 270, 297.911, 327.819, 0, 32.181, 62.089},
		},
		{
			name:      "sixty north",
			ramc:      45,
			latitude:  60,
			obliquity: 23.44,
			want:      []float64{152.140, 169.118, 193.049, 227.464, 271.119, 306.472, 332.140, 349.118, 13.049, 47.464, 91.119, 126.472},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := compute(Placidus, tt.ramc, tt.latitude, tt.obliquity)
			if err != nil {
				t.Fatalf("compute() unexpected error = %v", err)
			}
			cuspsEqual(t, result.Cusps, tt.want, 1e-3)
			if result.Cusps[0] != result.Angles.ASC {
				t.Errorf("house 1 cusp = %v, want ASC %v", result.Cusps[0], result.Angles.ASC)
			}
			if result.Cusps[9] != result.Angles.MC {
				t.Errorf("house 10 cusp = %v, want MC %v", result.Cusps[9], result.Angles.MC)
			}
		})
	}
}

func TestCompute_WholeSign(t *testing.T) {
	result, err := compute(WholeSign, nycRAMC, nycLatitude, nycObliquity)
	if err != nil {
		t.Fatalf("compute() unexpected error = %v", err)
	}

	want := []float64{0, 30, 60, 90, 120, 150, 180, 210, 240, 270, 300, 330}
	cuspsEqual(t, result.Cusps, want, 1e-9)

	if types.Separation(result.Angles.ASC, 20.6587) > 1e-3 {
		t.Errorf("ASC = %v, want 20.6587", result.Angles.ASC)
	}
	if result.Cusp(1) != 0 || result.Cusp(12) != 330 {
		t.Errorf("Cusp(1), Cusp(12) = %v, %v, want 0, 330", result.Cusp(1), result.Cusp(12))
	}
}

func TestCompute_Equal(t *testing.T) {
	result, err := compute(Equal, nycRAMC, nycLatitude, nycObliquity)
	if err != nil {
		t.Fatalf("compute() unexpected error = %v", err)
	}
	for i, cusp := range result.Cusps {
		want := types.Norm360(result.Angles.ASC + 30*float64(i))
		if types.Separation(cusp, want) > 1e-9 {
			t.Errorf("cusp %d = %v, want %v", i+1, cusp, want)
		}
	}
}

func TestCompute_AntipodalAngles(t *testing.T) {
	for _, system := range []System{WholeSign, Placidus, Equal} {
		for ramc := 0.0; ramc < 360; ramc += 15 {
			for _, lat := range []float64{-60, -33.9, 0, 12.5, 40.7128, 51.5, 65} {
				result, err := compute(system, ramc, lat, 23.44)
				if err != nil {
					t.Fatalf("compute(%v, %v, %v) unexpected error = %v", system, ramc, lat, err)
				}
				a := result.Angles
				if a.DS != types.Norm360(a.ASC+180) || a.IC != types.Norm360(a.MC+180) {
					t.Errorf("compute(%v, %v, %v) angles not antipodal: %+v", system, ramc, lat, a)
				}
				for i, cusp := range result.Cusps {
					if cusp < 0 || cusp >= 360 || math.IsNaN(cusp) {
						t.Errorf("compute(%v, %v, %v) cusp %d = %v outside [0, 360)", system, ramc, lat, i+1, cusp)
					}
				}
				if system == WholeSign {
					for _, cusp := range result.Cusps {
						if math.Mod(cusp, 30) != 0 {
							t.Errorf("whole sign cusp %v is not a sign boundary", cusp)
						}
					}
				}
			}
		}
	}
}

func TestCompute_Degenerate(t *testing.T) {
	tests := []struct {
		name     string
		system   System
		latitude float64
	}{
		{"placidus arctic", Placidus, 70},
		{"placidus antarctic", Placidus, -70},
		{"placidus at polar circle", Placidus, 90 - 23.44},
		{"whole sign at pole", WholeSign, 90},
		{"equal at south pole", Equal, -90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compute(tt.system, 45, tt.latitude, 23.44)
			if !errors.Is(err, ErrDegenerate) {
				t.Errorf("compute() error = %v, want ErrDegenerate", err)
			}
		})
	}
}

func TestCompute_UnknownSystem(t *testing.T) {
	_, err := compute(System(42), 0, 0, 23.44)
	if !errors.Is(err, ErrUnknownSystem) {
		t.Errorf("compute() error = %v, want ErrUnknownSystem", err)
	}
}

func TestCompute_Frame(t *testing.T) {
	frame, err := astro.Resolve("1990-01-01 12:00", "America/New_York", types.NewGeoLocation(40.7128, -74.0060, 0))
	if err != nil {
		t.Fatalf("Resolve() unexpected error = %v", err)
	}

	result, err := Compute(Placidus, frame)
	if err != nil {
		t.Fatalf("Compute() unexpected error = %v", err)
	}
	if types.Separation(result.Angles.ASC, 20.6587) > 1e-3 || types.Separation(result.Angles.MC, 281.1050) > 1e-3 {
		t.Errorf("Compute() angles = %+v, want ASC 20.6587 MC 281.1050", result.Angles)
	}
	if result.System != Placidus {
		t.Errorf("Compute() system = %v, want PLACIDUS", result.System)
	}
}

func TestParseSystem(t *testing.T) {
	tests := []struct {
		input    string
		expected System
		wantErr  bool
	}{
		{"WHOLE", WholeSign, false},
		{"whole_sign", WholeSign, false},
		{"Placidus", Placidus, false},
		{"p", Placidus, false},
		{"equal", Equal, false},
		{"koch", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseSystem(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownSystem) {
					t.Errorf("ParseSystem(%q) error = %v, want ErrUnknownSystem", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSystem(%q) unexpected error = %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseSystem(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNewAngles(t *testing.T) {
	want := Angles{ASC: 350, MC: 260, DS: 170, IC: 80}
	if diff := cmp.Diff(want, NewAngles(-10, 260), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("NewAngles() mismatch (-want +got):\n%s", diff)
	}
}

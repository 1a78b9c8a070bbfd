package gas

import (
	"testing"

	"github.com/deepstop/zhlcore/environment"
	"github.com/deepstop/zhlcore/units"
)

func TestAirIsValid(t *testing.T) {
	air := Air()
	if !air.Valid() {
		t.Error("Air() should be valid")
	}
	if air.FO2 != 0.21 || air.FN2 != 0.79 || air.FHe != 0 {
		t.Errorf("Air() = %+v, want fO2=0.21 fN2=0.79 fHe=0", air)
	}
}

func TestNitroxRejectsOutOfRange(t *testing.T) {
	if _, err := Nitrox(0.15); err == nil {
		t.Error("expected error for fO2 below 0.21")
	}
	if _, err := Nitrox(1.01); err == nil {
		t.Error("expected error for fO2 above 1.0")
	}
	m, err := Nitrox(0.32)
	if err != nil {
		t.Fatalf("Nitrox(0.32) returned error: %v", err)
	}
	if !m.Valid() {
		t.Error("EAN32 should be valid")
	}
}

func TestTrimixFractionsMustSumToOne(t *testing.T) {
	if _, err := Trimix(0.6, 0.6); err == nil {
		t.Error("expected error when fO2+fHe exceeds 1.0")
	}
	m, err := Trimix(0.21, 0.35)
	if err != nil {
		t.Fatalf("Trimix(0.21, 0.35) returned error: %v", err)
	}
	if diff := m.FN2 - 0.44; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("FN2 = %v, want 0.44", m.FN2)
	}
}

func TestValidRejectsBadFractions(t *testing.T) {
	bad := Mix{FO2: 0.5, FHe: 0.2, FN2: 0.2}
	if bad.Valid() {
		t.Error("fractions summing to 0.9 should be invalid")
	}
	negative := Mix{FO2: -0.1, FHe: 0.1, FN2: 1.0}
	if negative.Valid() {
		t.Error("negative fraction should be invalid")
	}
}

func TestMaximumOperatingDepthAir(t *testing.T) {
	air := Air()
	mod := air.MaximumOperatingDepth(1.4, environment.DefaultSurfacePressure)
	// ppO2 1.4 / 0.21 = 6.667 bar; (6.667-1.013)/0.10101 ~= 56.0m
	if mod.Metres() < 55 || mod.Metres() > 58 {
		t.Errorf("Air MOD at ppO2=1.4 = %vm, want ~56.0m", mod.Metres())
	}
}

func TestEquivalentNarcoticDepthOfAirIsItself(t *testing.T) {
	air := Air()
	depth := units.Depth(30)
	end := air.EquivalentNarcoticDepth(depth, environment.DefaultSurfacePressure)
	if diff := end.Metres() - depth.Metres(); diff > 1e-9 || diff < -1e-9 {
		t.Errorf("air END at 30m = %vm, want exactly 30m (air's own narcotic fraction is 1.0)", end.Metres())
	}
}

func TestEquivalentNarcoticDepthTrimixIsShallower(t *testing.T) {
	trimix, err := Trimix(0.21, 0.35)
	if err != nil {
		t.Fatalf("Trimix returned error: %v", err)
	}
	depth := units.Depth(45)
	end := trimix.EquivalentNarcoticDepth(depth, environment.DefaultSurfacePressure)
	if end.Metres() >= depth.Metres() {
		t.Errorf("trimix END at 45m = %vm, want shallower than 45m", end.Metres())
	}
}

func TestEqual(t *testing.T) {
	a := Air()
	b := Mix{FO2: 0.21, FN2: 0.79}
	if !a.Equal(b) {
		t.Error("identical fractions should be Equal")
	}
	if a.Equal(Mix{FO2: 0.32, FN2: 0.68}) {
		t.Error("different fractions should not be Equal")
	}
}

func TestStringNaming(t *testing.T) {
	cases := []struct {
		mix  Mix
		want string
	}{
		{Air(), "Air"},
		{Mix{FO2: 0.32, FN2: 0.68}, "Nitrox 32"},
	}
	for _, c := range cases {
		if got := c.mix.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestBestNitrox(t *testing.T) {
	m, err := BestNitrox(units.Depth(30), 1.4, environment.DefaultSurfacePressure)
	if err != nil {
		t.Fatalf("BestNitrox returned error: %v", err)
	}
	if m.FO2 <= 0.21 || m.FO2 > 0.40 {
		t.Errorf("BestNitrox(30m, 1.4) fO2 = %v, want in (0.21, 0.40]", m.FO2)
	}
}

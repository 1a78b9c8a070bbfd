package zhl16

import (
	"testing"

	"github.com/deepstop/zhlcore/environment"
	"github.com/deepstop/zhlcore/gas"
	"github.com/deepstop/zhlcore/units"
)

func defaultGFParams() GFParams {
	return GFParams{
		GFLow:            0.3,
		GFHigh:           0.85,
		StopWindow:       units.Depth(3),
		Surface:          environment.DefaultSurfacePressure,
		RecalcAllTissues: true,
	}
}

func TestCeilingZeroAtSurfaceSaturation(t *testing.T) {
	set := NewSet(environment.DefaultSurfacePressure)
	got := set.Ceiling(defaultGFParams())
	if got != 0 {
		t.Errorf("Ceiling() on a surface-saturated Set = %v, want 0", got)
	}
}

func TestCeilingIsPositiveAfterLoadingDive(t *testing.T) {
	set := NewSet(environment.DefaultSurfacePressure)
	set.Haldane(units.Depth(40), units.TimeFromMinutes(40), gas.Air(), environment.DefaultSurfacePressure)

	got := set.Ceiling(defaultGFParams())
	if got <= 0 {
		t.Errorf("Ceiling() after a long 40m exposure = %v, want > 0", got)
	}
}

func TestCeilingIsContinuousNotWindowRounded(t *testing.T) {
	// Ceiling() reports the raw, continuous GF-adjusted depth (spec
	// §4.1 line 88); rounding to a stop-window multiple is the deco
	// planner's first-stop concern (spec §4.4 step 1), not this
	// package's. A 3m window would otherwise mask the fractional depth
	// this exposure actually produces.
	set := NewSet(environment.DefaultSurfacePressure)
	set.Haldane(units.Depth(40), units.TimeFromMinutes(40), gas.Air(), environment.DefaultSurfacePressure)

	params := defaultGFParams()
	params.StopWindow = units.Depth(3)
	got := set.Ceiling(params)

	window := params.StopWindow.Metres()
	remainder := got.Metres() / window
	if remainder == float64(int(remainder)) {
		t.Errorf("Ceiling() = %v happened to land on an exact stop-window multiple; this test wants a fractional depth to prove no rounding occurs", got)
	}
}

func TestRoundUpToStopWindow(t *testing.T) {
	cases := []struct {
		depth, window, want units.Depth
	}{
		{units.Depth(3.0156), units.Depth(3), units.Depth(6)},
		{units.Depth(6), units.Depth(3), units.Depth(6)},
		{units.Depth(0.01), units.Depth(3), units.Depth(3)},
	}
	for _, c := range cases {
		if got := RoundUpToStopWindow(c.depth, c.window); got != c.want {
			t.Errorf("RoundUpToStopWindow(%v, %v) = %v, want %v", c.depth, c.window, got, c.want)
		}
	}
}

func TestCeilingLowerGFHighIsMoreConservative(t *testing.T) {
	set := NewSet(environment.DefaultSurfacePressure)
	set.Haldane(units.Depth(40), units.TimeFromMinutes(40), gas.Air(), environment.DefaultSurfacePressure)

	conservative := defaultGFParams()
	conservative.GFLow = 0.2
	conservative.GFHigh = 0.2

	liberal := defaultGFParams()
	liberal.GFLow = 0.9
	liberal.GFHigh = 0.9

	gotConservative := set.Ceiling(conservative)
	gotLiberal := set.Ceiling(liberal)

	if gotConservative < gotLiberal {
		t.Errorf("lower GF should never produce a shallower ceiling: conservative=%v liberal=%v", gotConservative, gotLiberal)
	}
}

func TestAnchorDepthZeroWhenUnloaded(t *testing.T) {
	set := NewSet(environment.DefaultSurfacePressure)
	anchor := set.AnchorDepth(defaultGFParams())
	if anchor != 0 {
		t.Errorf("AnchorDepth() on a surface-saturated Set = %v, want 0", anchor)
	}
}

func TestCeilingFromAnchorAgreesWithCeiling(t *testing.T) {
	set := NewSet(environment.DefaultSurfacePressure)
	set.Haldane(units.Depth(40), units.TimeFromMinutes(40), gas.Air(), environment.DefaultSurfacePressure)

	params := defaultGFParams()
	anchor := set.AnchorDepth(params)

	direct := set.Ceiling(params)
	viaAnchor := set.CeilingFromAnchor(params, anchor)

	if direct != viaAnchor {
		t.Errorf("Ceiling() = %v, CeilingFromAnchor() = %v, want equal for a freshly computed anchor", direct, viaAnchor)
	}
}

func TestSupersaturation99AtZeroLoadIsNotPositive(t *testing.T) {
	set := NewSet(environment.DefaultSurfacePressure)
	gf99 := set.Supersaturation99(units.Depth(0), environment.DefaultSurfacePressure)
	if gf99 > 1e-6 {
		t.Errorf("gf99 on a surface-saturated Set = %v, want <= 0", gf99)
	}
}

func TestSupersaturationIncreasesAfterLoading(t *testing.T) {
	set := NewSet(environment.DefaultSurfacePressure)
	before := set.SupersaturationSurface(environment.DefaultSurfacePressure)
	set.Haldane(units.Depth(40), units.TimeFromMinutes(40), gas.Air(), environment.DefaultSurfacePressure)
	after := set.SupersaturationSurface(environment.DefaultSurfacePressure)

	if after <= before {
		t.Errorf("gf_surf should increase after loading: before=%v after=%v", before, after)
	}
}

package zhl16

import (
	"math"

	"github.com/deepstop/zhlcore/environment"
	"github.com/deepstop/zhlcore/units"
	"gonum.org/v1/gonum/floats"
)

// CeilingType selects how conservatively the ceiling is reported, per
// spec §4.1.
type CeilingType int

const (
	// Actual reports the true GF-adjusted ceiling.
	Actual CeilingType = iota
	// Adaptive only treats a ceiling as binding if an ascent at the
	// configured rate would cross a compartment's M-value; it changes
	// NDL but never the value ceiling() itself reports (spec §4.1).
	Adaptive
)

// GFParams bundles the gradient-factor conservatism knobs a ceiling
// computation needs.
type GFParams struct {
	GFLow            float64                      // fraction in [0,1]
	GFHigh           float64                      // fraction in [0,1]
	StopWindow       units.Depth                  // unused by Ceiling itself; see RoundUpToStopWindow
	Surface          environment.SurfacePressure
	RecalcAllTissues bool
}

// ceilingEpsilon is the tolerance used for ceiling-equals-surface
// comparisons, per spec §7.
const ceilingEpsilon = 1e-9

// bisectionIterations is generous enough to converge well past double
// precision for the [0, hi] search interval compartmentCeilingDepth
// brackets.
const bisectionIterations = 64

// Ceiling returns the overall GF-adjusted decompression ceiling, the
// shallowest depth compatible with every compartment's gradient-
// factor-scaled M-value, as a continuous depth (spec §4.1, line 88).
// This is the raw facade value; rounding to a stop-window multiple is
// the deco planner's concern when it picks a first stop (spec §4.4
// step 1), not this package's.
func (s *Set) Ceiling(p GFParams) units.Depth {
	anchor := s.AnchorDepth(p)
	return s.CeilingFromAnchor(p, anchor)
}

// CeilingFromAnchor computes the GF-adjusted ceiling using a caller-
// supplied anchor depth rather than recomputing it from the current
// tensions. The deco planner uses this to keep the GF-interpolation
// anchor pinned at the plan's first stop depth throughout a multi-
// stage ascent (spec design note §9: "recomputing it mid-plan would
// break monotonicity of deco obligations").
func (s *Set) CeilingFromAnchor(p GFParams, anchor units.Depth) units.Depth {
	raw := s.rawCeilingFromAnchor(p, anchor)
	if raw <= ceilingEpsilon {
		return 0
	}
	return raw
}

func (s *Set) rawCeilingFromAnchor(p GFParams, anchor units.Depth) units.Depth {
	depths := make([]float64, NumCompartments)
	leading := -1
	leadingTension := -math.MaxFloat64
	for i, t := range s.tensions {
		depths[i] = s.compartmentCeilingDepth(i, t, p, anchor).Metres()
		if t.Total() > leadingTension {
			leadingTension = t.Total()
			leading = i
		}
	}

	if !p.RecalcAllTissues {
		return units.Depth(math.Max(depths[leading], 0))
	}

	maxDepth := floats.Max(depths)
	return units.Depth(math.Max(maxDepth, 0))
}

// AnchorDepth is the "first stop" depth S1 that gradient-factor
// interpolation is pinned to: the ceiling every compartment would
// demand if GFLow applied uniformly, per spec design note §9.
func (s *Set) AnchorDepth(p GFParams) units.Depth {
	maxPressure := -math.MaxFloat64
	for i, t := range s.tensions {
		a, b := blendedCoefficients(i, t)
		amb := ceilingPressureForGF(t.Total(), a, b, p.GFLow)
		if amb > maxPressure {
			maxPressure = amb
		}
	}
	surfaceBar := p.Surface.Bar()
	if maxPressure < surfaceBar {
		return 0
	}
	return environment.DepthForPressure(maxPressure, p.Surface)
}

// compartmentCeilingDepth finds the shallowest depth at which
// compartment i's tension no longer exceeds its GF-adjusted M-value,
// with GF itself a (depth-dependent) linear interpolation anchored at
// anchor/p.GFLow and surface/p.GFHigh. Solved by bisection since GF's
// dependence on depth makes the per-compartment equation self-
// referential; spec §4.4 permits any search that agrees with the
// closed-form definition.
func (s *Set) compartmentCeilingDepth(i int, t Tension, p GFParams, anchor units.Depth) units.Depth {
	a, b := blendedCoefficients(i, t)

	violatesAt := func(depth units.Depth) bool {
		amb := environment.AmbientPressure(depth, p.Surface)
		gf := gfAtDepth(depth, anchor, p.GFLow, p.GFHigh)
		allowed := amb + gf*(s.mValueFromAB(a, b, amb)-amb)
		return t.Total() > allowed
	}

	hi := anchor
	if hi < units.Depth(1) {
		hi = units.Depth(1)
	}
	for violatesAt(hi) {
		hi *= 2
		if hi > units.Depth(400) {
			break
		}
	}
	if !violatesAt(hi) && !violatesAt(0) {
		return 0
	}

	lo := units.Depth(0)
	for iter := 0; iter < bisectionIterations; iter++ {
		mid := (lo + hi) / 2
		if violatesAt(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}

func (s *Set) mValueFromAB(a, b, ambientBar float64) float64 {
	return ambientBar/b + a
}

// gfAtDepth linearly interpolates the gradient factor between gfHigh
// at the surface and gfLow at anchorDepth, clamping to gfLow beyond
// the anchor (spec §4.4 step 2).
func gfAtDepth(depth, anchor units.Depth, gfLow, gfHigh float64) float64 {
	if anchor <= 0 {
		return gfHigh
	}
	frac := depth.Metres() / anchor.Metres()
	if frac >= 1 {
		return gfLow
	}
	if frac <= 0 {
		return gfHigh
	}
	return gfHigh + (gfLow-gfHigh)*frac
}

// ceilingPressureForGF solves the spec §4.1 closed form for a single,
// fixed gradient factor: amb_c = (P - a*gf) / (gf/b + 1 - gf).
func ceilingPressureForGF(totalTension, a, b, gf float64) float64 {
	return (totalTension - a*gf) / (gf/b + 1 - gf)
}

// RoundUpToStopWindow rounds depth up to the next multiple of window,
// the first-stop determination the deco planner applies to a raw
// ceiling before it picks S1 (spec §4.4 step 1).
func RoundUpToStopWindow(depth, window units.Depth) units.Depth {
	w := window.Metres()
	if w <= 0 {
		return depth
	}
	return units.Depth(math.Ceil(depth.Metres()/w) * w)
}

// Supersaturation99 returns gf_99: the percentage of the gap between
// current ambient pressure and the M-value at that same ambient
// pressure that current tension already occupies, per spec §4.1.
func (s *Set) Supersaturation99(depth units.Depth, surface environment.SurfacePressure) float64 {
	amb := environment.AmbientPressure(depth, surface)
	return s.supersaturationAt(amb)
}

// SupersaturationSurface returns gf_surf: the same ratio evaluated at
// surface pressure.
func (s *Set) SupersaturationSurface(surface environment.SurfacePressure) float64 {
	return s.supersaturationAt(surface.Bar())
}

func (s *Set) supersaturationAt(ambientBar float64) float64 {
	worst := -math.MaxFloat64
	for i, t := range s.tensions {
		m := s.MValue(i, ambientBar)
		if m == ambientBar {
			continue
		}
		gf := 100.0 * (t.Total() - ambientBar) / (m - ambientBar)
		if gf > worst {
			worst = gf
		}
	}
	if worst == -math.MaxFloat64 {
		return 0
	}
	return worst
}

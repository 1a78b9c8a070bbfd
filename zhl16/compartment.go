package zhl16

import (
	"math"

	"github.com/deepstop/zhlcore/environment"
	"github.com/deepstop/zhlcore/gas"
	"github.com/deepstop/zhlcore/units"
)

// pH2O is the partial pressure of water vapour in the alveoli, in bar.
const pH2O = 0.0627

// airFN2 is the fraction of nitrogen in air, used to saturate a fresh
// model at the surface.
const airFN2 = 0.79

// Tension holds the absolute inert-gas tensions (bar) carried by a
// single compartment.
type Tension struct {
	N2 float64
	He float64
}

// Total returns the combined inert-gas tension.
func (t Tension) Total() float64 {
	return t.N2 + t.He
}

// Set is the ordered sequence of 16 ZH-L16C compartments and their
// current tensions. The coefficient table is shared (read-only); only
// the tensions vary per instance.
type Set struct {
	tensions [NumCompartments]Tension
}

// NewSet returns a Set saturated with ambient inert gases at the
// surface, per spec §3: N2 tension = (surface_p - pH2O) * 0.79, He = 0.
func NewSet(surface environment.SurfacePressure) *Set {
	s := &Set{}
	n2 := (surface.Bar() - pH2O) * airFN2
	for i := range s.tensions {
		s.tensions[i] = Tension{N2: n2, He: 0}
	}
	return s
}

// SetFromTensions rebuilds a Set from previously captured per-
// compartment tensions, used when restoring a persisted model state.
func SetFromTensions(tensions [NumCompartments]Tension) *Set {
	return &Set{tensions: tensions}
}

// Clone returns a deep copy of the Set — a value copy of the 16 tuple
// of tensions, O(1) in practice, for the planner and NDL searcher to
// project forward without mutating the live model.
func (s *Set) Clone() *Set {
	clone := *s
	return &clone
}

// Tensions returns a copy of the current per-compartment tensions.
func (s *Set) Tensions() [NumCompartments]Tension {
	return s.tensions
}

// Haldane advances every compartment's tensions by dt at the constant
// ambient pressure implied by depth, breathing mix m. Spec §4.1:
//
//	P_t' = P_t + (P_i - P_t) * (1 - 2^(-dt/halfTime))
func (s *Set) Haldane(depth units.Depth, dt units.Time, m gas.Mix, surface environment.SurfacePressure) {
	if dt <= 0 {
		return
	}
	minutes := dt.Minutes()
	_, ppHe, ppN2 := m.InspiredPartialPressures(depth, surface)
	for i := range s.tensions {
		c := Table[i]
		s.tensions[i].N2 = haldaneStep(s.tensions[i].N2, ppN2, minutes, c.HalfTimeN2)
		s.tensions[i].He = haldaneStep(s.tensions[i].He, ppHe, minutes, c.HalfTimeHe)
	}
}

func haldaneStep(pt, pi, minutes, halfTime float64) float64 {
	return pt + (pi-pt)*(1.0-math.Exp2(-minutes/halfTime))
}

// Schreiner advances every compartment's tensions across a linear
// transition from fromDepth to toDepth over dt, breathing mix m. Spec
// §4.1:
//
//	P_t' = P_i0 + R*(dt - 1/k) - (P_i0 - P_t - R/k) * e^(-k*dt), k = ln(2)/halfTime
//
// R is the rate of change of each gas's inspired partial pressure, in
// bar/minute; its sign follows the direction of travel.
func (s *Set) Schreiner(fromDepth, toDepth units.Depth, dt units.Time, m gas.Mix, surface environment.SurfacePressure) {
	if dt <= 0 {
		return
	}
	minutes := dt.Minutes()

	ambFrom := environment.AmbientPressure(fromDepth, surface)
	ambTo := environment.AmbientPressure(toDepth, surface)
	ambRate := (ambTo - ambFrom) / minutes

	_, pi0He, pi0N2 := m.InspiredPartialPressures(fromDepth, surface)
	rHe := ambRate * m.FHe
	rN2 := ambRate * m.FN2

	for i := range s.tensions {
		c := Table[i]
		s.tensions[i].N2 = schreinerStep(s.tensions[i].N2, pi0N2, rN2, minutes, c.HalfTimeN2)
		s.tensions[i].He = schreinerStep(s.tensions[i].He, pi0He, rHe, minutes, c.HalfTimeHe)
	}
}

func schreinerStep(pt, pi0, r, minutes, halfTime float64) float64 {
	k := math.Ln2 / halfTime
	return pi0 + r*(minutes-1.0/k) - (pi0-pt-r/k)*math.Exp(-k*minutes)
}

// blendedCoefficients returns the mixed-inert a and b coefficients for
// compartment i given its current tensions, per spec §4.1:
//
//	a = (aN2*pN2 + aHe*pHe) / P; b = (bN2*pN2 + bHe*pHe) / P
func blendedCoefficients(i int, t Tension) (a, b float64) {
	c := Table[i]
	total := t.Total()
	if total <= 0 {
		return c.AN2, c.BN2
	}
	a = (c.AN2*t.N2 + c.AHe*t.He) / total
	b = (c.BN2*t.N2 + c.BHe*t.He) / total
	return a, b
}

// MValue returns the maximum tolerated inert tension for compartment i
// at the given absolute ambient pressure: M(amb) = amb/b + a.
func (s *Set) MValue(i int, ambientBar float64) float64 {
	a, b := blendedCoefficients(i, s.tensions[i])
	return ambientBar/b + a
}

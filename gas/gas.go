// Package gas models a breathing gas mixture (fO2, fHe, fN2) and the
// partial-pressure arithmetic built on top of it: inspired partial
// pressures, maximum operating depth, and equivalent narcotic depth.
package gas

import (
	"fmt"
	"math"

	"github.com/deepstop/zhlcore/environment"
	"github.com/deepstop/zhlcore/units"
)

// pH2O is the partial pressure of water vapour in the alveoli, in bar.
// Constant regardless of ambient pressure.
const pH2O = 0.0627

// fractionSumEpsilon bounds how far fO2+fHe+fN2 may drift from 1.0.
const fractionSumEpsilon = 1e-9

// Mix is a breathing gas: fractions of oxygen, helium and nitrogen.
// FN2 is always 1 - FO2 - FHe; constructors derive it so callers never
// have to balance the triple themselves.
type Mix struct {
	FO2 float64
	FHe float64
	FN2 float64
}

// Air is the standard atmospheric mix: 21% oxygen, 79% nitrogen.
func Air() Mix {
	return Mix{FO2: 0.21, FN2: 0.79}
}

// Nitrox builds an FO2/FN2 mix with no helium.
func Nitrox(fo2 float64) (Mix, error) {
	if fo2 < 0.21 || fo2 > 1.0 {
		return Mix{}, fmt.Errorf("gas: invalid fO2 %.4f, must be within [0.21, 1.0]", fo2)
	}
	return Mix{FO2: fo2, FN2: 1.0 - fo2}, nil
}

// Heliox builds an FO2/FHe mix with no nitrogen.
func Heliox(fo2 float64) (Mix, error) {
	if fo2 < 0.21 || fo2 >= 0.99 {
		return Mix{}, fmt.Errorf("gas: invalid fO2 %.4f, must be within [0.21, 0.99)", fo2)
	}
	return Mix{FO2: fo2, FHe: 1.0 - fo2}, nil
}

// Trimix builds a full three-gas mix.
func Trimix(fo2, fhe float64) (Mix, error) {
	if fo2 < 0.08 || fo2 > 0.98 {
		return Mix{}, fmt.Errorf("gas: invalid fO2 %.4f, must be within [0.08, 0.98]", fo2)
	}
	if fhe < 0 || fhe > 0.92 {
		return Mix{}, fmt.Errorf("gas: invalid fHe %.4f, must be within [0, 0.92]", fhe)
	}
	if fo2+fhe > 1.0 {
		return Mix{}, fmt.Errorf("gas: fO2 (%.4f) + fHe (%.4f) exceeds 1.0", fo2, fhe)
	}
	return Mix{FO2: fo2, FHe: fhe, FN2: 1.0 - fo2 - fhe}, nil
}

// BestNitrox returns the richest Nitrox mix whose ppO2 does not exceed
// maxPPO2 at depth, floored to two decimal places for a round number on
// a cylinder label.
func BestNitrox(depth units.Depth, maxPPO2 float64, surface environment.SurfacePressure) (Mix, error) {
	amb := environment.AmbientPressure(depth, surface)
	fo2 := math.Floor((maxPPO2/amb)*100.0) / 100.0
	return Nitrox(fo2)
}

// Valid reports whether the three fractions sum to 1.0 within epsilon
// and are each non-negative, per spec invariant 2.
func (m Mix) Valid() bool {
	if m.FO2 < 0 || m.FHe < 0 || m.FN2 < 0 {
		return false
	}
	return math.Abs(m.FO2+m.FHe+m.FN2-1.0) <= fractionSumEpsilon
}

// PartialPressures returns the ambient (pre-lung) partial pressures of
// O2, He and N2 at depth.
func (m Mix) PartialPressures(depth units.Depth, surface environment.SurfacePressure) (ppO2, ppHe, ppN2 float64) {
	amb := environment.AmbientPressure(depth, surface)
	return amb * m.FO2, amb * m.FHe, amb * m.FN2
}

// InspiredPartialPressures returns the partial pressures actually
// presented to the tissues: ambient pressure less alveolar water
// vapour, applied across all three fractions.
func (m Mix) InspiredPartialPressures(depth units.Depth, surface environment.SurfacePressure) (ppO2, ppHe, ppN2 float64) {
	amb := environment.AmbientPressure(depth, surface) - pH2O
	return amb * m.FO2, amb * m.FHe, amb * m.FN2
}

// MaximumOperatingDepth returns the depth at which this mix's ppO2
// equals ppO2Limit.
func (m Mix) MaximumOperatingDepth(ppO2Limit float64, surface environment.SurfacePressure) units.Depth {
	if m.FO2 <= 0 {
		return units.Depth(math.Inf(1))
	}
	return environment.DepthForPressure(ppO2Limit/m.FO2, surface)
}

// EquivalentNarcoticDepth returns the depth of air producing the same
// narcotic partial-pressure sum as this mix at depth. O2 and N2 are
// treated as equally narcotic; helium is assumed non-narcotic.
func (m Mix) EquivalentNarcoticDepth(depth units.Depth, surface environment.SurfacePressure) units.Depth {
	amb := environment.AmbientPressure(depth, surface)
	narcoticFraction := m.FO2 + m.FN2
	airNarcoticPressure := amb * narcoticFraction
	return environment.DepthForPressure(airNarcoticPressure, surface)
}

// Equal reports whether two mixes have the same fractions within
// floating-point tolerance.
func (m Mix) Equal(other Mix) bool {
	const eps = 1e-9
	return math.Abs(m.FO2-other.FO2) <= eps &&
		math.Abs(m.FHe-other.FHe) <= eps &&
		math.Abs(m.FN2-other.FN2) <= eps
}

func (m Mix) String() string {
	switch {
	case m.FHe == 0 && m.FO2 == 0.21:
		return "Air"
	case m.FHe > 0 && m.FN2 == 0:
		return fmt.Sprintf("Heliox %.0f/%.0f", m.FO2*100, m.FHe*100)
	case m.FHe > 0:
		return fmt.Sprintf("Trimix %.0f/%.0f", m.FO2*100, m.FHe*100)
	default:
		return fmt.Sprintf("Nitrox %.0f", m.FO2*100)
	}
}

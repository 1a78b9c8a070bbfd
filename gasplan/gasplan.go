// Package gasplan holds cylinder-gas bookkeeping built on top of the
// decompression core: how much breathing gas a stage or a whole
// runtime requires, and the minimum gas a diver must reserve for an
// emergency direct ascent. This is deliberately a separate concern
// from the decompression core itself (spec §1's out-of-scope list
// names dive planning for real use; this package is the thin,
// non-normative convenience layer the teacher's own DivePlan carried).
package gasplan

import (
	"github.com/deepstop/zhlcore/deco"
	"github.com/deepstop/zhlcore/environment"
	"github.com/deepstop/zhlcore/units"
)

// buddyMultiplier doubles the minimum-gas reserve so it covers sharing
// air with a buddy (or, for a solo diver, two independent sources).
const buddyMultiplier = 2.0

// StageGasLitres returns the breathing gas required for one stage
// given a diver's surface air consumption rate (litres/minute) and a
// work-of-breathing dive factor, following the teacher's
// pressure*SAC*factor*duration formula.
func StageGasLitres(s deco.Stage, sacRate, diveFactor float64, surface environment.SurfacePressure) float64 {
	avgDepth := units.Depth((s.StartDepth.Metres() + s.EndDepth.Metres()) / 2.0)
	amb := environment.AmbientPressure(avgDepth, surface)
	return amb * sacRate * diveFactor * s.Duration.Minutes()
}

// RuntimeGasLitres sums StageGasLitres across every stage in a
// runtime.
func RuntimeGasLitres(r deco.Runtime, sacRate, diveFactor float64, surface environment.SurfacePressure) float64 {
	var total float64
	for _, s := range r.Stages {
		total += StageGasLitres(s, sacRate, diveFactor, surface)
	}
	return total
}

// MinimumGasLitres returns the gas required to get a diver (plus a
// buddy, or a second independent source if solo) from maxDepth to the
// surface in an emergency, including a safety stop, following the
// teacher's MinGas calculation.
func MinimumGasLitres(maxDepth units.Depth, ascentRateMpm, sacRate, diveFactor float64, surface environment.SurfacePressure) float64 {
	const safetyStopDepth = units.Depth(5.0)
	const safetyStopMinutes = 3.0

	maxPressure := environment.AmbientPressure(maxDepth, surface)
	avgPressure := environment.AmbientPressure(maxDepth/2.0, surface)
	stopPressure := environment.AmbientPressure(safetyStopDepth, surface)
	ascentMinutes := maxDepth.Metres() / ascentRateMpm

	elevatedSAC := sacRate * diveFactor * buddyMultiplier * 1.5

	preparationGas := 1.0 * maxPressure * elevatedSAC
	ascentGas := ascentMinutes * avgPressure * elevatedSAC
	stopGas := safetyStopMinutes * stopPressure * elevatedSAC

	return preparationGas + ascentGas + stopGas
}

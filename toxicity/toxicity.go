// Package toxicity accumulates the two standard measures of oxygen
// exposure during a dive: CNS (central-nervous-system) percentage and
// OTU (pulmonary oxygen tolerance units).
package toxicity

import "math"

// noaaBreakpoint is one entry of the NOAA single-exposure CNS table:
// at ppO2, a diver may spend up to limitMinutes before reaching 100%
// CNS loading.
type noaaBreakpoint struct {
	ppO2        float64
	limitMinutes float64
}

// noaaTable is the NOAA oxygen exposure table, per spec §4.3.
var noaaTable = []noaaBreakpoint{
	{0.60, 720},
	{0.70, 570},
	{0.80, 450},
	{0.90, 360},
	{1.00, 300},
	{1.10, 240},
	{1.20, 210},
	{1.30, 180},
	{1.40, 150},
	{1.50, 120},
	{1.60, 45},
}

// singleExposureLimitMinutes returns the NOAA allowed single-exposure
// duration in minutes for the given ppO2, interpolating linearly
// between table breakpoints. Below the first breakpoint, exposure is
// harmless (zero contribution, handled by the caller); above the last,
// the limit is clamped to a short exposure.
func singleExposureLimitMinutes(ppO2 float64) float64 {
	if ppO2 < noaaTable[0].ppO2 {
		return math.Inf(1)
	}
	if ppO2 >= noaaTable[len(noaaTable)-1].ppO2 {
		return noaaTable[len(noaaTable)-1].limitMinutes
	}
	for i := 1; i < len(noaaTable); i++ {
		if ppO2 <= noaaTable[i].ppO2 {
			lo, hi := noaaTable[i-1], noaaTable[i]
			frac := (ppO2 - lo.ppO2) / (hi.ppO2 - lo.ppO2)
			return lo.limitMinutes + frac*(hi.limitMinutes-lo.limitMinutes)
		}
	}
	return noaaTable[len(noaaTable)-1].limitMinutes
}

// otuThreshold is the ppO2 below which OTU accumulation is zero.
const otuThreshold = 0.5

// Accumulator holds the running CNS and OTU totals for a dive.
type Accumulator struct {
	CNSPercent float64
	OTU        float64
}

// Accumulate folds in one exposure interval of duration (seconds) at
// the given ppO2, per spec §4.3.
func (a *Accumulator) Accumulate(ppO2 float64, durationSeconds float64) {
	if durationSeconds <= 0 {
		return
	}
	minutes := durationSeconds / 60.0

	if ppO2 >= 0.5 {
		limit := singleExposureLimitMinutes(ppO2)
		if !math.IsInf(limit, 1) {
			a.CNSPercent += 100.0 * minutes / limit
		}
	}

	if ppO2 > otuThreshold {
		a.OTU += minutes * math.Pow(0.5/(ppO2-otuThreshold), -5.0/6.0)
	}
}

package engine

import "github.com/deepstop/zhlcore/units"

// maxNDLMinutes is the upper cap the NDL search reports, per spec §4.5.
const maxNDLMinutes = 99

// NDL returns the no-decompression limit in minutes: the smallest
// integer t in [0, 99] such that a hypothetical Record at the current
// depth and gas for t minutes would yield a decompression ceiling, or
// 99 if no such t exists. Search is performed on a clone; the live
// model is untouched (spec §4.5, §9).
func (m *Model) NDL() int {
	if m.Ceiling() > 0 {
		return 0
	}

	switch m.cfg.CeilingType {
	case "adaptive":
		return m.adaptiveNDL()
	default:
		return m.actualNDL()
	}
}

func (m *Model) actualNDL() int {
	for minute := 0; minute <= maxNDLMinutes; minute++ {
		probe := m.Clone()
		_ = probe.Record(m.currDepth, units.TimeFromMinutes(float64(minute)), m.currGas)
		if probe.Ceiling() > 0 {
			return minute
		}
	}
	return maxNDLMinutes
}

// adaptiveNDL uses the same search as actualNDL but replaces the
// obligation predicate: a minute is only disqualifying if a direct
// ascent to the surface at the configured deco ascent rate would cross
// some compartment's GF-adjusted M-value at an intermediate depth,
// not merely if ceiling() is already positive (spec §4.5). This is why
// Adaptive NDL can exceed Actual NDL.
func (m *Model) adaptiveNDL() int {
	for minute := 0; minute <= maxNDLMinutes; minute++ {
		probe := m.Clone()
		_ = probe.Record(m.currDepth, units.TimeFromMinutes(float64(minute)), m.currGas)
		if probe.ascentCrossesMValue() {
			return minute
		}
	}
	return maxNDLMinutes
}

// ascentCrossesMValue simulates a direct ascent to the surface at the
// configured deco ascent rate and reports whether any compartment's
// tension would cross its GF-adjusted M-value partway up, by sampling
// the ascent in one-metre steps.
func (m *Model) ascentCrossesMValue() bool {
	probe := m.Clone()
	depth := probe.currDepth
	rate := probe.cfg.DecoAscentRateMpm
	if rate <= 0 || depth <= 0 {
		return false
	}

	step := units.Depth(1.0)
	for depth > 0 {
		target := depth - step
		if target < 0 {
			target = 0
		}
		_ = probe.RecordTravelWithRate(target, rate, probe.currGas)
		if probe.Ceiling() > target {
			return true
		}
		depth = target
	}
	return false
}

// Package deco implements the forward-ascent decompression planner
// (spec §4.4, C7): given a model's current state and a list of
// candidate gases, it simulates an ideal ascent on a cloned model and
// returns the ordered stage-by-stage runtime, choosing stop depths,
// gas switches and stop durations along the way.
package deco

import (
	"math"

	"github.com/deepstop/zhlcore/engine"
	"github.com/deepstop/zhlcore/environment"
	"github.com/deepstop/zhlcore/gas"
	"github.com/deepstop/zhlcore/units"
	"github.com/deepstop/zhlcore/zhl16"
)

// stopCap bounds a single decompression stop, per spec §4.4 step 5.
const stopCap = 99 * 60.0 // seconds

// Plan produces the decompression runtime for m's current state,
// choosing deco gases only from gases. m is never mutated; all
// simulation happens on a clone (spec §4.4, §9).
func Plan(m *engine.Model, gases []gas.Mix) (Runtime, error) {
	if len(gases) == 0 {
		return Runtime{}, ErrEmptyGasList
	}
	if !containsGas(gases, m.CurrentGas()) {
		return Runtime{}, ErrCurrentGasNotInList
	}

	stages, total, err := simulateAscent(m.Clone(), gases)
	if err != nil {
		return Runtime{}, err
	}
	ttsMinutes := int(math.Ceil(total.Minutes()))

	plus5 := m.Clone()
	if err := plus5.Record(plus5.CurrentDepth(), units.TimeFromMinutes(5), plus5.CurrentGas()); err != nil {
		return Runtime{}, err
	}
	_, total5, err := simulateAscent(plus5, gases)
	if err != nil {
		return Runtime{}, err
	}
	tts5Minutes := int(math.Ceil(total5.Minutes()))

	return Runtime{
		Stages:      stages,
		TTSMinutes:  ttsMinutes,
		TTSAt5:      tts5Minutes,
		TTSDeltaAt5: tts5Minutes - ttsMinutes,
	}, nil
}

// simulateAscent walks clone from its current depth to the surface,
// emitting Ascent, GasSwitch and DecoStop stages, per spec §4.4 steps
// 1-6. It returns the stages and the total elapsed time spent doing
// so.
func simulateAscent(clone *engine.Model, gases []gas.Mix) ([]Stage, units.Time, error) {
	cfg := clone.Config()
	anchor := clone.FirstStopAnchor()
	stopWindow := cfg.StopWindow()

	// First-stop determination (spec §4.4 step 1): S1 is the current
	// raw ceiling rounded up to the next stop-window multiple, not the
	// continuous facade value ceiling() itself reports.
	rawStop := clone.CeilingWithAnchor(anchor)
	var stopDepth units.Depth
	if rawStop > 0 {
		stopDepth = zhl16.RoundUpToStopWindow(rawStop, stopWindow)
	}

	var stages []Stage
	var total units.Time

	if stopDepth <= 0 {
		stage, dur := ascend(clone, 0)
		stages = append(stages, stage)
		total = total.Add(dur)
		return stages, total, nil
	}

	for stopDepth > 0 {
		if clone.CurrentDepth() > stopDepth {
			stage, dur := ascend(clone, stopDepth)
			stages = append(stages, stage)
			total = total.Add(dur)
		}

		if stage, switched := maybeSwitchGas(clone, gases, cfg.DecoGasSwitchPPO2, anchor); switched {
			stages = append(stages, stage)
		}

		nextStop := stopDepth - stopWindow
		if nextStop < 0 {
			nextStop = 0
		}

		stage, dur, err := waitOutStop(clone, anchor, nextStop)
		if err != nil {
			return nil, 0, err
		}
		if dur > 0 {
			stages = append(stages, stage)
			total = total.Add(dur)
		}

		stopDepth = nextStop
	}

	stage, dur := ascend(clone, 0)
	stages = append(stages, stage)
	total = total.Add(dur)

	return stages, total, nil
}

// ascend advances clone from its current depth to target at the
// configured deco ascent rate, emitting a single Ascent stage.
func ascend(clone *engine.Model, target units.Depth) (Stage, units.Time) {
	start := clone.CurrentDepth()
	rate := clone.Config().DecoAscentRateMpm
	beforeTime := clone.CurrentTime()
	_ = clone.RecordTravelWithRate(target, rate, clone.CurrentGas())
	dur := clone.CurrentTime() - beforeTime
	return Stage{Kind: Ascent, StartDepth: start, EndDepth: target, Duration: dur, Gas: clone.CurrentGas()}, dur
}

// maybeSwitchGas chooses the best available deco gas at the current
// depth and, if it differs from the current gas, performs an
// instantaneous switch (spec §4.4 step 4). Switches are only
// considered while in decompression, i.e. at or shallower than the
// anchor depth.
func maybeSwitchGas(clone *engine.Model, gases []gas.Mix, ppO2Limit float64, anchor units.Depth) (Stage, bool) {
	if clone.CurrentDepth() > anchor {
		return Stage{}, false
	}

	best, ok := bestDecoGas(gases, clone.CurrentDepth(), clone.Config().Surface(), ppO2Limit)
	if !ok || best.Equal(clone.CurrentGas()) {
		return Stage{}, false
	}

	depth := clone.CurrentDepth()
	_ = clone.Record(depth, 0, best)
	return Stage{Kind: GasSwitch, StartDepth: depth, EndDepth: depth, Duration: 0, Gas: best}, true
}

// bestDecoGas picks, among gases whose MOD is at least depth (so its
// ppO2 does not exceed ppO2Limit there), the one with the highest
// fO2, breaking ties on the highest fHe (spec §4.4 step 4). Per the
// reference implementation, this is MOD-only: a low-fO2 travel gas is
// not excluded from being "switched to" at a shallow stop, which is
// unsuitable for hypoxic trimix deco gas selection (spec §9 open
// question, §1 non-goal) and is reproduced here deliberately.
func bestDecoGas(gases []gas.Mix, depth units.Depth, surface environment.SurfacePressure, ppO2Limit float64) (gas.Mix, bool) {
	var best gas.Mix
	found := false
	for _, g := range gases {
		mod := g.MaximumOperatingDepth(ppO2Limit, surface)
		if mod < depth {
			continue
		}
		if !found || g.FO2 > best.FO2 || (g.FO2 == best.FO2 && g.FHe > best.FHe) {
			best = g
			found = true
		}
	}
	return best, found
}

func containsGas(gases []gas.Mix, g gas.Mix) bool {
	for _, candidate := range gases {
		if candidate.Equal(g) {
			return true
		}
	}
	return false
}

// waitOutStop advances clone in configured-interval steps at its
// current depth until the GF-adjusted ceiling (computed against the
// pinned anchor) drops strictly below nextStop, emitting one DecoStop
// stage with the cumulative duration (spec §4.4 step 5). If no
// waiting is required, dur is zero and the returned stage should be
// discarded by the caller.
func waitOutStop(clone *engine.Model, anchor, nextStop units.Depth) (Stage, units.Time, error) {
	interval := units.Time(clone.Config().StopCalcIntervalSeconds)
	if interval <= 0 {
		interval = units.Time(1)
	}

	depth := clone.CurrentDepth()
	start := clone.CurrentTime()
	var elapsed float64

	for {
		ceil := clone.CeilingWithAnchor(anchor)
		if ceil <= 0 || ceil < nextStop {
			break
		}
		if elapsed >= stopCap {
			return Stage{}, 0, ErrStopExceededCap
		}
		_ = clone.Record(depth, interval, clone.CurrentGas())
		elapsed += interval.Seconds()
	}

	dur := clone.CurrentTime() - start
	return Stage{Kind: DecoStop, StartDepth: depth, EndDepth: depth, Duration: dur, Gas: clone.CurrentGas()}, dur, nil
}

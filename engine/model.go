// Package engine holds the decompression Model: current depth, time
// and breathing gas, the 16-compartment saturation state and the
// oxygen toxicity accumulators, and the record API that advances them
// (spec §4.2, C5).
package engine

import (
	"math"

	"github.com/deepstop/zhlcore/config"
	"github.com/deepstop/zhlcore/gas"
	"github.com/deepstop/zhlcore/toxicity"
	"github.com/deepstop/zhlcore/units"
	"github.com/deepstop/zhlcore/zhl16"
)

// Supersaturation bundles the two reported gradient-factor readings
// (spec §3).
type Supersaturation struct {
	GF99    float64
	GFSurf  float64
}

// Model is the complete decompression model state: config, tissue
// saturation, current position, and toxicity accumulators. Not safe
// for concurrent mutation (spec §5).
type Model struct {
	cfg          config.ModelConfig
	compartments *zhl16.Set
	tox          toxicity.Accumulator
	currDepth    units.Depth
	currTime     units.Time
	currGas      gas.Mix
}

// New constructs a Model from cfg, saturated with ambient inert gases
// at the surface on Air, per spec §3's CompartmentSet initial state.
func New(cfg config.ModelConfig) *Model {
	return &Model{
		cfg:          cfg,
		compartments: zhl16.NewSet(cfg.Surface()),
		currGas:      gas.Air(),
	}
}

// Clone returns a deep copy of the Model for forward projection (NDL
// search, deco planning) without mutating the live instance.
func (m *Model) Clone() *Model {
	clone := *m
	clone.compartments = m.compartments.Clone()
	return &clone
}

// Config returns the model's configuration.
func (m *Model) Config() config.ModelConfig {
	return m.cfg
}

// CurrentDepth returns the model's current depth.
func (m *Model) CurrentDepth() units.Depth {
	return m.currDepth
}

// CurrentTime returns the elapsed dive time.
func (m *Model) CurrentTime() units.Time {
	return m.currTime
}

// CurrentGas returns the gas currently being breathed.
func (m *Model) CurrentGas() gas.Mix {
	return m.currGas
}

// Record advances the model by a constant-depth (Haldane) exposure of
// t at depth, breathing g. A call with t == 0 is a gas-only switch:
// toxicity and tensions are unchanged, only the current gas changes
// (spec §4.2).
func (m *Model) Record(depth units.Depth, t units.Time, g gas.Mix) error {
	if depth < 0 {
		return ErrNegativeDepth
	}
	if t < 0 {
		return ErrNegativeTime
	}
	if !g.Valid() {
		return ErrInvalidGas
	}

	if t > 0 {
		m.compartments.Haldane(depth, t, g, m.cfg.Surface())
		ppO2, _, _ := g.PartialPressures(depth, m.cfg.Surface())
		m.tox.Accumulate(ppO2, t.Seconds())
		m.currTime = m.currTime.Add(t)
	}

	m.currDepth = depth
	m.currGas = g
	return nil
}

// RecordTravel advances the model across a linear (Schreiner) depth
// transition from the current depth to target over t, breathing g.
// Toxicity is accumulated using the mean depth over the transition
// (spec §4.2).
func (m *Model) RecordTravel(target units.Depth, t units.Time, g gas.Mix) error {
	if target < 0 {
		return ErrNegativeDepth
	}
	if t < 0 {
		return ErrNegativeTime
	}
	if !g.Valid() {
		return ErrInvalidGas
	}

	from := m.currDepth
	if t > 0 {
		m.compartments.Schreiner(from, target, t, g, m.cfg.Surface())
		meanDepth := units.Depth((from.Metres() + target.Metres()) / 2.0)
		ppO2, _, _ := g.PartialPressures(meanDepth, m.cfg.Surface())
		m.tox.Accumulate(ppO2, t.Seconds())
		m.currTime = m.currTime.Add(t)
	}

	m.currDepth = target
	m.currGas = g
	return nil
}

// RecordTravelWithRate derives the travel time from the depth
// difference and rate (metres/minute, always positive) and delegates
// to RecordTravel (spec §4.2).
func (m *Model) RecordTravelWithRate(target units.Depth, rateMpm float64, g gas.Mix) error {
	if rateMpm <= 0 {
		return ErrNegativeTime
	}
	delta := math.Abs(target.Metres() - m.currDepth.Metres())
	minutes := delta / rateMpm
	return m.RecordTravel(target, units.TimeFromMinutes(minutes), g)
}

// gfParams builds the zhl16.GFParams this model's configuration implies.
func (m *Model) gfParams() zhl16.GFParams {
	return zhl16.GFParams{
		GFLow:            float64(m.cfg.GFLow) / 100.0,
		GFHigh:           float64(m.cfg.GFHigh) / 100.0,
		StopWindow:       m.cfg.StopWindow(),
		Surface:          m.cfg.Surface(),
		RecalcAllTissues: m.cfg.RecalcAllTissuesMValues,
	}
}

// Ceiling returns the current GF-adjusted decompression ceiling, in
// metres (spec §4.1, §4.2).
func (m *Model) Ceiling() units.Depth {
	return m.compartments.Ceiling(m.gfParams())
}

// FirstStopAnchor returns the GF-interpolation anchor depth (S1) the
// deco planner pins for the duration of a plan (spec §4.4 step 2,
// design note §9).
func (m *Model) FirstStopAnchor() units.Depth {
	return m.compartments.AnchorDepth(m.gfParams())
}

// CeilingWithAnchor returns the GF-adjusted ceiling computed against a
// caller-supplied, fixed GF-interpolation anchor rather than one
// recomputed from the current tensions.
func (m *Model) CeilingWithAnchor(anchor units.Depth) units.Depth {
	return m.compartments.CeilingFromAnchor(m.gfParams(), anchor)
}

// Supersaturation returns the current GF99 and surface GF readings
// (spec §4.1).
func (m *Model) Supersaturation() Supersaturation {
	return Supersaturation{
		GF99:   m.compartments.Supersaturation99(m.currDepth, m.cfg.Surface()),
		GFSurf: m.compartments.SupersaturationSurface(m.cfg.Surface()),
	}
}

// CNS returns the current CNS oxygen toxicity percentage (spec §4.3).
func (m *Model) CNS() float64 {
	return m.tox.CNSPercent
}

// OTU returns the current pulmonary oxygen toxicity units (spec §4.3).
func (m *Model) OTU() float64 {
	return m.tox.OTU
}

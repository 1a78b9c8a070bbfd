package deco

import (
	"github.com/deepstop/zhlcore/gas"
	"github.com/deepstop/zhlcore/units"
)

// StageKind identifies the kind of segment a DecoStage represents.
type StageKind int

const (
	// Ascent is a continuous transition to a shallower depth.
	Ascent StageKind = iota
	// DecoStop is time spent waiting at a single depth for an
	// off-gassing obligation to clear.
	DecoStop
	// GasSwitch is an instantaneous change of breathing gas at a
	// fixed depth (StartDepth == EndDepth, Duration == 0).
	GasSwitch
)

func (k StageKind) String() string {
	switch k {
	case Ascent:
		return "Ascent"
	case DecoStop:
		return "DecoStop"
	case GasSwitch:
		return "GasSwitch"
	default:
		return "Unknown"
	}
}

// Stage is one ordered segment of a DecoRuntime (spec §3).
type Stage struct {
	Kind       StageKind
	StartDepth units.Depth
	EndDepth   units.Depth
	Duration   units.Time
	Gas        gas.Mix
}

// Runtime is the complete ordered decompression plan plus its
// time-to-surface projections (spec §3).
type Runtime struct {
	Stages      []Stage
	TTSMinutes  int // total minutes, rounded up
	TTSAt5      int // projected TTS after 5 more minutes at the current depth
	TTSDeltaAt5 int // signed difference, TTSAt5 - TTSMinutes
}

//go:build serialize

package engine

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/deepstop/zhlcore/config"
	"github.com/deepstop/zhlcore/gas"
	"github.com/deepstop/zhlcore/toxicity"
	"github.com/deepstop/zhlcore/units"
	"github.com/deepstop/zhlcore/zhl16"
)

// compartmentState is the BSON-serializable form of one compartment's
// tensions.
type compartmentState struct {
	N2 float64 `bson:"n2"`
	He float64 `bson:"he"`
}

// State is the complete serializable Model state named in spec §6's
// "optional persistence": configuration, tissue tensions, current
// depth/time/gas, and toxicity accumulators. Field tags follow the
// teacher's own bson-tagged DivePlan/DivePlanStop convention.
type State struct {
	Config       config.ModelConfig  `bson:"config"`
	Compartments []compartmentState  `bson:"compartments"`
	DepthMetres  float64             `bson:"depth_m"`
	TimeSeconds  float64             `bson:"time_s"`
	GasFO2       float64             `bson:"gas_fo2"`
	GasFHe       float64             `bson:"gas_fhe"`
	CNSPercent   float64             `bson:"cns_percent"`
	OTU          float64             `bson:"otu"`
}

// Snapshot captures the model's complete state for persistence.
func (m *Model) Snapshot() State {
	tensions := m.compartments.Tensions()
	compartments := make([]compartmentState, len(tensions))
	for i, t := range tensions {
		compartments[i] = compartmentState{N2: t.N2, He: t.He}
	}

	return State{
		Config:       m.cfg,
		Compartments: compartments,
		DepthMetres:  m.currDepth.Metres(),
		TimeSeconds:  m.currTime.Seconds(),
		GasFO2:       m.currGas.FO2,
		GasFHe:       m.currGas.FHe,
		CNSPercent:   m.tox.CNSPercent,
		OTU:          m.tox.OTU,
	}
}

// Restore rebuilds a Model from a previously captured State.
func Restore(st State) *Model {
	m := &Model{
		cfg:       st.Config,
		currDepth: units.Depth(st.DepthMetres),
		currTime:  units.Time(st.TimeSeconds),
		currGas:   gas.Mix{FO2: st.GasFO2, FHe: st.GasFHe, FN2: 1.0 - st.GasFO2 - st.GasFHe},
		tox:       toxicity.Accumulator{CNSPercent: st.CNSPercent, OTU: st.OTU},
	}

	set := zhl16.NewSet(st.Config.Surface())
	tensions := set.Tensions()
	for i, c := range st.Compartments {
		if i >= len(tensions) {
			break
		}
		tensions[i] = zhl16.Tension{N2: c.N2, He: c.He}
	}
	m.compartments = zhl16.SetFromTensions(tensions)
	return m
}

// MarshalBSON implements bson.Marshaler by delegating to Snapshot, so
// a Model can be written directly to a MongoDB collection when the
// serialize build tag is enabled.
func (m *Model) MarshalBSON() ([]byte, error) {
	return bson.Marshal(m.Snapshot())
}

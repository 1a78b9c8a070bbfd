package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/deepstop/zhlcore/config"
	"github.com/deepstop/zhlcore/gas"
)

// divePlanFile is the YAML shape of a dive-plan file passed to the
// dive and plan subcommands: a model configuration, a table of named
// gas presets, and the ordered list of events to replay through the
// engine.
type divePlanFile struct {
	Model  config.ModelConfig    `yaml:"model"`
	Gases  map[string]config.GasPreset `yaml:"gases"`
	Events []diveEvent           `yaml:"events"`
}

// diveEvent is either a constant-depth exposure (Depth set, TravelTo
// unset) or a linear travel segment (TravelTo set).
type diveEvent struct {
	Depth      *float64 `yaml:"depth"`
	TravelTo   *float64 `yaml:"travel_to"`
	TimeMin    float64  `yaml:"time_min"`
	RateMpm    float64  `yaml:"rate_mpm"`
	GasName    string   `yaml:"gas"`
}

// loadDivePlan reads and strictly parses a dive-plan YAML file.
func loadDivePlan(path string) (divePlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return divePlanFile{}, fmt.Errorf("cmd: reading %s: %w", path, err)
	}

	plan := divePlanFile{Model: config.Default()}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&plan); err != nil {
		return divePlanFile{}, fmt.Errorf("cmd: parsing %s: %w", path, err)
	}
	if err := plan.Model.Validate(); err != nil {
		return divePlanFile{}, err
	}
	return plan, nil
}

// resolveGas looks up a named preset, falling back to Air for "air"
// or an empty name.
func (p divePlanFile) resolveGas(name string) (gas.Mix, error) {
	if name == "" || name == "air" || name == "Air" {
		return gas.Air(), nil
	}
	preset, ok := p.Gases[name]
	if !ok {
		return gas.Mix{}, fmt.Errorf("cmd: unknown gas preset %q", name)
	}
	return gas.Mix{FO2: preset.FO2, FHe: preset.FHe, FN2: 1.0 - preset.FO2 - preset.FHe}, nil
}

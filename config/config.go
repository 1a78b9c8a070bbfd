// Package config defines ModelConfig, the set of recognized tuning
// options for a decompression model (spec §3), and loads it plus named
// gas-mix presets from a YAML file.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/deepstop/zhlcore/environment"
	"github.com/deepstop/zhlcore/units"
)

// CeilingType mirrors zhl16.CeilingType without importing it, so this
// package stays a leaf the engine and planner both depend on rather
// than vice versa.
type CeilingType string

const (
	CeilingActual   CeilingType = "actual"
	CeilingAdaptive CeilingType = "adaptive"
)

// ModelConfig is the complete set of recognized model options, per
// spec §3.
type ModelConfig struct {
	GFLow    int `yaml:"gf_low"`
	GFHigh   int `yaml:"gf_high"`

	SurfacePressureMbar float64 `yaml:"surface_pressure"`
	DecoAscentRateMpm   float64 `yaml:"deco_ascent_rate"`

	CeilingType              CeilingType `yaml:"ceiling_type"`
	RecalcAllTissuesMValues  bool        `yaml:"recalc_all_tissues_m_values"`
	DecoStopWindowM          float64     `yaml:"deco_stop_window"`

	// DecoGasSwitchPPO2 is the pO2 ceiling (bar) a deco gas must not
	// exceed at the switch depth; spec §4.4 step 4's "switch threshold".
	DecoGasSwitchPPO2 float64 `yaml:"deco_gas_switch_ppo2"`

	// StopCalcIntervalSeconds is the granularity the planner advances
	// the clone by while timing a stop; spec §4.4 step 5.
	StopCalcIntervalSeconds float64 `yaml:"stop_calc_interval_seconds"`
}

// Default returns the ModelConfig spec §3 names as defaults.
func Default() ModelConfig {
	return ModelConfig{
		GFLow:                   100,
		GFHigh:                  100,
		SurfacePressureMbar:     1013,
		DecoAscentRateMpm:       10,
		CeilingType:             CeilingActual,
		RecalcAllTissuesMValues: true,
		DecoStopWindowM:         3,
		DecoGasSwitchPPO2:       1.6,
		StopCalcIntervalSeconds: 1,
	}
}

// Validate checks the recognized options are within their documented
// ranges (spec §3).
func (c ModelConfig) Validate() error {
	if c.GFLow < 1 || c.GFLow > 100 {
		return fmt.Errorf("config: gf_low %d out of range [1,100]", c.GFLow)
	}
	if c.GFHigh < 1 || c.GFHigh > 100 {
		return fmt.Errorf("config: gf_high %d out of range [1,100]", c.GFHigh)
	}
	if c.DecoAscentRateMpm <= 0 {
		return fmt.Errorf("config: deco_ascent_rate must be positive, got %f", c.DecoAscentRateMpm)
	}
	if c.CeilingType != CeilingActual && c.CeilingType != CeilingAdaptive {
		return fmt.Errorf("config: unrecognized ceiling_type %q", c.CeilingType)
	}
	if c.DecoStopWindowM <= 0 {
		return fmt.Errorf("config: deco_stop_window must be positive, got %f", c.DecoStopWindowM)
	}
	return nil
}

// Surface returns the configured surface pressure as an
// environment.SurfacePressure.
func (c ModelConfig) Surface() environment.SurfacePressure {
	return environment.SurfacePressure(c.SurfacePressureMbar)
}

// StopWindow returns the configured deco stop window as a units.Depth.
func (c ModelConfig) StopWindow() units.Depth {
	return units.Depth(c.DecoStopWindowM)
}

// File is the document shape loaded from a YAML configuration file: a
// model configuration plus a table of named gas-mix presets a dive
// plan can reference by name.
type File struct {
	Model   ModelConfig          `yaml:"model"`
	Presets map[string]GasPreset `yaml:"gases"`
}

// GasPreset names a gas mixture in fraction terms so dive-plan YAML
// files can refer to "EAN32" instead of spelling out fractions.
type GasPreset struct {
	FO2 float64 `yaml:"fo2"`
	FHe float64 `yaml:"fhe"`
}

// Load reads and strictly parses a YAML configuration file: unknown
// fields are rejected rather than silently ignored, the same
// KnownFields(true) discipline the inference-sim CLI's config loader
// uses.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	f := File{Model: Default()}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return File{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := f.Model.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

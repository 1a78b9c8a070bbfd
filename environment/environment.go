// Package environment converts between depth and absolute ambient
// pressure. It is the one place that formula lives, so that every
// caller — the compartment integrator, the gas partial-pressure
// arithmetic, the planner — agrees on the same constant.
package environment

import "github.com/deepstop/zhlcore/units"

// Density of salt water in kg/m^3 and standard gravity in m/s^2; see
// spec §4.6. Combined they give the often-quoted "10 m per bar"
// approximation used throughout the rest of the package.
const (
	saltWaterDensity = 1030.0 // kg/m^3
	gravity          = 9.80665
	barPerPascal     = 1e-5
)

// barPerMetre is rho*g expressed in bar/metre terms, i.e. the bar of
// ambient pressure added per metre of salt water.
var barPerMetre = saltWaterDensity * gravity * barPerPascal

// SurfacePressure is the ambient pressure at the surface, in millibars.
// 1013 mbar (one standard atmosphere) is the default per spec §3.
type SurfacePressure float64

// DefaultSurfacePressure is the configuration default, 1013 mbar.
const DefaultSurfacePressure SurfacePressure = 1013

// Bar returns the surface pressure expressed in bar.
func (sp SurfacePressure) Bar() float64 {
	return float64(sp) / 1000.0
}

// AmbientPressure returns the absolute pressure in bar at the given
// depth, given the surface pressure.
func AmbientPressure(depth units.Depth, surface SurfacePressure) float64 {
	return surface.Bar() + depth.Metres()*barPerMetre
}

// DepthForPressure inverts AmbientPressure: the depth at which the
// given absolute pressure in bar is reached.
func DepthForPressure(pressureBar float64, surface SurfacePressure) units.Depth {
	return units.Depth((pressureBar - surface.Bar()) / barPerMetre)
}

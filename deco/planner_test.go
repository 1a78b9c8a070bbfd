package deco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepstop/zhlcore/config"
	"github.com/deepstop/zhlcore/engine"
	"github.com/deepstop/zhlcore/gas"
	"github.com/deepstop/zhlcore/units"
)

func TestPlanRejectsEmptyGasList(t *testing.T) {
	m := engine.New(config.Default())
	_, err := Plan(m, nil)
	require.ErrorIs(t, err, ErrEmptyGasList)
}

func TestPlanRejectsCurrentGasNotInList(t *testing.T) {
	m := engine.New(config.Default())
	nitrox, err := gas.Nitrox(0.32)
	require.NoError(t, err)

	_, err = Plan(m, []gas.Mix{nitrox})
	require.ErrorIs(t, err, ErrCurrentGasNotInList)
}

func TestPlanAtSurfaceIsTrivial(t *testing.T) {
	m := engine.New(config.Default())
	runtime, err := Plan(m, []gas.Mix{gas.Air()})
	require.NoError(t, err)

	assert.Equal(t, 0, runtime.TTSMinutes)
	require.Len(t, runtime.Stages, 1)
	assert.Equal(t, Ascent, runtime.Stages[0].Kind)
}

func TestPlanDoesNotMutateTheLiveModel(t *testing.T) {
	m := engine.New(config.Default())
	require.NoError(t, m.Record(units.Depth(45), units.TimeFromMinutes(30), gas.Air()))

	beforeDepth := m.CurrentDepth()
	beforeTime := m.CurrentTime()

	_, err := Plan(m, []gas.Mix{gas.Air()})
	require.NoError(t, err)

	assert.Equal(t, beforeDepth, m.CurrentDepth())
	assert.Equal(t, beforeTime, m.CurrentTime())
}

func TestPlanAfterDecoLoadProducesStops(t *testing.T) {
	m := engine.New(config.Default())
	require.NoError(t, m.Record(units.Depth(45), units.TimeFromMinutes(30), gas.Air()))

	runtime, err := Plan(m, []gas.Mix{gas.Air()})
	require.NoError(t, err)

	assert.Greater(t, runtime.TTSMinutes, 0)

	var sawStop bool
	for _, s := range runtime.Stages {
		if s.Kind == DecoStop {
			sawStop = true
		}
	}
	assert.True(t, sawStop, "a 30-minute exposure at 45m should require at least one deco stop")
}

func TestPlanTTSAt5IsAtLeastTTS(t *testing.T) {
	m := engine.New(config.Default())
	require.NoError(t, m.Record(units.Depth(45), units.TimeFromMinutes(30), gas.Air()))

	runtime, err := Plan(m, []gas.Mix{gas.Air()})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, runtime.TTSAt5, runtime.TTSMinutes)
	assert.Equal(t, runtime.TTSAt5-runtime.TTSMinutes, runtime.TTSDeltaAt5)
}

func TestBestDecoGasPicksHighestFO2WithinMOD(t *testing.T) {
	air := gas.Air()
	ean50, err := gas.Nitrox(0.50)
	require.NoError(t, err)
	oxygen, err := gas.Nitrox(1.0)
	require.NoError(t, err)

	gases := []gas.Mix{air, ean50, oxygen}

	best, ok := bestDecoGas(gases, units.Depth(5), config.Default().Surface(), 1.6)
	require.True(t, ok)
	assert.True(t, best.Equal(oxygen), "at 5m, pure O2's MOD should clear and it has the highest fO2")
}

func TestBestDecoGasExcludesGasesExceedingMOD(t *testing.T) {
	air := gas.Air()
	oxygen, err := gas.Nitrox(1.0)
	require.NoError(t, err)

	gases := []gas.Mix{air, oxygen}

	best, ok := bestDecoGas(gases, units.Depth(30), config.Default().Surface(), 1.6)
	require.True(t, ok)
	assert.True(t, best.Equal(air), "pure O2's MOD is exceeded at 30m, so air should be selected")
}

func TestContainsGas(t *testing.T) {
	gases := []gas.Mix{gas.Air()}
	assert.True(t, containsGas(gases, gas.Air()))

	nitrox, err := gas.Nitrox(0.32)
	require.NoError(t, err)
	assert.False(t, containsGas(gases, nitrox))
}

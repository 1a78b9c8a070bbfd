package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deepstop/zhlcore/gas"
)

func TestDiveCmdRegisteredUnderRoot(t *testing.T) {
	found := false
	for _, c := range rootCmd.Commands() {
		if c.Name() == "dive" {
			found = true
		}
	}
	assert.True(t, found, "dive subcommand must be registered on the root command")
}

func TestPlanCmdGasesFlagDefaultsEmpty(t *testing.T) {
	flag := planCmd.Flags().Lookup("gases")
	assert.NotNil(t, flag, "gases flag must be registered on plan")
	assert.Equal(t, "[]", flag.DefValue, "gases flag must default to an empty list")
}

func TestRootCmdLogFlagDefaultsToInfo(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("log")
	assert.NotNil(t, flag, "log flag must be registered")
	assert.Equal(t, "info", flag.DefValue)
}

func TestResolveGasArgsFallsBackToCurrentGasWhenNoFlagGiven(t *testing.T) {
	decoGasArg = nil
	gases, err := resolveGasArgs(divePlanFile{}, gas.Air())
	assert.NoError(t, err)
	assert.Len(t, gases, 1)
}

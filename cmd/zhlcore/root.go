// Package cmd wires the zhlcore engine up to a small cobra CLI: a
// "dive" subcommand that replays a YAML dive plan through the engine
// and reports ceiling/NDL/toxicity, and a "plan" subcommand that also
// runs the deco planner and prints the resulting runtime. The
// structure — package-level flag vars, an init() that registers them,
// an Execute() entrypoint — follows the inference-sim CLI's
// cmd/root.go.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/deepstop/zhlcore/deco"
	"github.com/deepstop/zhlcore/engine"
	"github.com/deepstop/zhlcore/gas"
)

var (
	logLevel   string
	decoGasArg []string
)

var rootCmd = &cobra.Command{
	Use:   "zhlcore",
	Short: "Bühlmann ZH-L16C decompression engine",
}

var diveCmd = &cobra.Command{
	Use:   "dive <plan.yaml>",
	Short: "Replay a dive plan and report ceiling, NDL and toxicity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setLogLevel()

		plan, err := loadDivePlan(args[0])
		if err != nil {
			return err
		}

		m := engine.New(plan.Model)
		logrus.Infof("replaying %d events", len(plan.Events))
		if err := replay(m, plan); err != nil {
			return err
		}

		ss := m.Supersaturation()
		fmt.Printf("depth=%.1fm time=%.1fmin ceiling=%.2fm ndl=%dmin gf99=%.1f%% gfsurf=%.1f%% cns=%.1f%% otu=%.1f\n",
			m.CurrentDepth().Metres(), m.CurrentTime().Minutes(), m.Ceiling().Metres(), m.NDL(),
			ss.GF99, ss.GFSurf, m.CNS(), m.OTU())
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <plan.yaml>",
	Short: "Replay a dive plan and print the full decompression runtime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setLogLevel()

		plan, err := loadDivePlan(args[0])
		if err != nil {
			return err
		}

		m := engine.New(plan.Model)
		if err := replay(m, plan); err != nil {
			return err
		}

		gases, err := resolveGasArgs(plan, m.CurrentGas())
		if err != nil {
			return err
		}

		runtime, err := deco.Plan(m, gases)
		if err != nil {
			return err
		}

		printRuntime(runtime)
		return nil
	},
}

func resolveGasArgs(plan divePlanFile, current gas.Mix) ([]gas.Mix, error) {
	if len(decoGasArg) == 0 {
		return []gas.Mix{current}, nil
	}
	gases := make([]gas.Mix, 0, len(decoGasArg))
	for _, name := range decoGasArg {
		g, err := plan.resolveGas(name)
		if err != nil {
			return nil, err
		}
		gases = append(gases, g)
	}
	return gases, nil
}

func printRuntime(r deco.Runtime) {
	for _, s := range r.Stages {
		switch s.Kind {
		case deco.GasSwitch:
			fmt.Printf("  switch to %s at %.1fm\n", s.Gas, s.StartDepth.Metres())
		default:
			fmt.Printf("  %s %.1fm -> %.1fm (%.1f min) on %s\n",
				s.Kind, s.StartDepth.Metres(), s.EndDepth.Metres(), s.Duration.Minutes(), s.Gas)
		}
	}
	fmt.Printf("tts=%dmin tts+5=%dmin delta=%+dmin\n", r.TTSMinutes, r.TTSAt5, r.TTSDeltaAt5)
}

func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	planCmd.Flags().StringSliceVar(&decoGasArg, "gases", nil, "Named gas presets available for deco gas selection")

	rootCmd.AddCommand(diveCmd)
	rootCmd.AddCommand(planCmd)
}

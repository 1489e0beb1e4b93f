// Package commands implements the lvmath command line.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmath/internal/config"
	"github.com/katalvlaran/lvmath/internal/report"
)

// Version is set at build time:
//
//	-ldflags "-X 'github.com/katalvlaran/lvmath/cmd/lvmath/commands.Version=v0.3.0'"
var Version = "dev"

// flag names bound to config keys
var bindings = map[string]string{
	config.KeyTolerance:     "tolerance",
	config.KeyMaxIterations: "max-iterations",
	config.KeyLogLevel:      "log-level",
	config.KeyLogFormat:     "log-format",
	config.KeyOutput:        "output",
	config.KeyMetricsAddr:   "metrics-addr",
}

// app carries state resolved in the root pre-run.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *slog.Logger
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New(), cfg: config.Default()}

	root := &cobra.Command{
		Use:           "lvmath",
		Short:         "Numeric routines: Newton root finding, normal tables, enzyme kinetics",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, a.cfgFile, cmd.Flags(), bindings)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = cfg.Log.NewLogger(cmd.ErrOrStderr())
			a.log.Debug("configuration loaded", "file", a.cfgFile,
				"tolerance", cfg.Solver.Tolerance, "max_iterations", cfg.Solver.MaxIterations)

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.Float64("tolerance", config.DefaultTolerance, "solver tolerance and finite-difference step")
	pf.Int("max-iterations", a.cfg.Solver.MaxIterations, "solver iteration budget")
	pf.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.String("log-format", config.DefaultLogFormat, "log format (text, json)")
	pf.StringP("output", "o", config.DefaultOutput, "output format (text, json)")

	root.AddCommand(
		newSolveCmd(a),
		newNormalCmd(a),
		newKineticsCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return root
}

// print writes v in the configured output format.
func (a *app) print(cmd *cobra.Command, v report.Texter) error {
	return report.Write(cmd.OutOrStdout(), v, a.cfg.Output == config.OutputJSON)
}

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmath/internal/jsonx"
	"github.com/katalvlaran/lvmath/internal/report"
	"github.com/katalvlaran/lvmath/kinetics"
)

func newKineticsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinetics",
		Short: "Michaelis–Menten enzyme kinetics",
	}
	cmd.AddCommand(
		newKineticsFitCmd(a),
		newKineticsSubstrateCmd(a),
		newKineticsRemainingCmd(a),
	)

	return cmd
}

// readObservations decodes a JSON array of {"s":…, "v":…} from path, or
// stdin when path is "-".
func readObservations(cmd *cobra.Command, path string) ([]kinetics.Observation, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var obs []kinetics.Observation
	if err := jsonx.NewDecoder(r).Decode(&obs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return obs, nil
}

func newKineticsFitCmd(a *app) *cobra.Command {
	var data, method string
	cmd := &cobra.Command{
		Use:     "fit",
		Short:   "Estimate Vmax and Km from observations",
		Example: `  lvmath kinetics fit --data obs.json --method lineweaver-burk`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := kinetics.ParseMethod(method)
			if err != nil {
				return err
			}
			obs, err := readObservations(cmd, data)
			if err != nil {
				return err
			}
			res, err := kinetics.Fit(obs, m)
			if err != nil {
				return err
			}
			a.log.Debug("fit done", "method", m, "n", res.N, "r2", res.R2)

			return a.print(cmd, report.FromFit(res))
		},
	}
	cmd.Flags().StringVar(&data, "data", "-", "observations file (JSON array), - for stdin")
	cmd.Flags().StringVar(&method, "method", kinetics.HanesWoolf.String(), "hanes-woolf or lineweaver-burk")

	return cmd
}

func newKineticsSubstrateCmd(a *app) *cobra.Command {
	var p kinetics.Params
	var rate float64
	cmd := &cobra.Command{
		Use:   "substrate",
		Short: "Substrate concentration giving the requested rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := p.Substrate(rate)
			if err != nil {
				return err
			}

			return a.print(cmd, report.Substrate{S: s})
		},
	}
	cmd.Flags().Float64Var(&p.Vmax, "vmax", 0, "maximum rate")
	cmd.Flags().Float64Var(&p.Km, "km", 0, "Michaelis constant")
	cmd.Flags().Float64Var(&rate, "rate", 0, "target rate")
	_ = cmd.MarkFlagRequired("vmax")
	_ = cmd.MarkFlagRequired("km")
	_ = cmd.MarkFlagRequired("rate")

	return cmd
}

func newKineticsRemainingCmd(a *app) *cobra.Command {
	var p kinetics.Params
	var s0, elapsed float64
	cmd := &cobra.Command{
		Use:   "remaining",
		Short: "Substrate left after a given time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := p.Remaining(s0, elapsed, a.cfg.Solver.Tolerance)
			if err != nil {
				return err
			}

			return a.print(cmd, report.Substrate{S: s})
		},
	}
	cmd.Flags().Float64Var(&p.Vmax, "vmax", 0, "maximum rate")
	cmd.Flags().Float64Var(&p.Km, "km", 0, "Michaelis constant")
	cmd.Flags().Float64Var(&s0, "s0", 0, "initial substrate concentration")
	cmd.Flags().Float64Var(&elapsed, "time", 0, "elapsed time")
	for _, name := range []string{"vmax", "km", "s0", "time"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

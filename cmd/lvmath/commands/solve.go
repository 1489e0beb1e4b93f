package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmath/internal/report"
	"github.com/katalvlaran/lvmath/newton"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find roots with Newton's method",
	}
	cmd.AddCommand(newSolvePolyCmd(a))

	return cmd
}

func newSolvePolyCmd(a *app) *cobra.Command {
	var (
		coeffs []float64
		target float64
		guess  float64
		trace  bool
	)
	cmd := &cobra.Command{
		Use:   "poly",
		Short: "Solve p(x) = target for a polynomial",
		Example: `  lvmath solve poly --coeffs 1,0,-5 --guess 2
  lvmath solve poly --coeffs 1,-1,1 --guess -1 --target 0 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := a.cfg.SolverOptions()
			if trace {
				opts = append(opts, newton.WithOnIteration(func(s newton.Step) {
					a.log.Info("newton step", "iteration", s.Iteration, "guess", s.Guess,
						"output", s.Output, "slope", s.Slope, "residual", s.Residual)
				}))
			}
			res, err := newton.SolveResult(newton.Polynomial(coeffs...), []float64{guess}, target,
				a.cfg.Solver.Tolerance, opts...)
			if err != nil {
				return err
			}
			if !res.Converged() {
				a.log.Warn("solve diverged", "reason", res.Reason, "iterations", res.Iterations)
			}

			return a.print(cmd, report.FromResult(res))
		},
	}
	cmd.Flags().Float64SliceVar(&coeffs, "coeffs", nil, "coefficients, highest degree first")
	cmd.Flags().Float64Var(&target, "target", 0, "target value")
	cmd.Flags().Float64Var(&guess, "guess", 0, "initial guess")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every iteration")
	_ = cmd.MarkFlagRequired("coeffs")

	return cmd
}

package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmath/internal/report"
	"github.com/katalvlaran/lvmath/normal"
)

func newNormalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normal",
		Short: "Standard normal distribution and z-table",
		Long: "Standard normal distribution and z-table.\n\n" +
			"Negative arguments must follow \"--\", e.g. lvmath normal cdf -- -1.5",
	}
	cmd.AddCommand(
		newNormalCDFCmd(a),
		newNormalLookupCmd(a),
		newNormalReverseCmd(a),
		newNormalQuantileCmd(a),
		newNormalTableCmd(),
	)

	return cmd
}

func parseArg(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func newNormalCDFCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cdf Z",
		Short: "Exact cumulative probability and density at Z",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := parseArg(args[0])
			if err != nil {
				return err
			}

			return a.print(cmd, report.Normal{Z: z, P: normal.CDF(z), PDF: normal.PDF(z)})
		},
	}
}

func newNormalLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup Z",
		Short: "Four-place table value for Z rounded to two places",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := parseArg(args[0])
			if err != nil {
				return err
			}
			p, err := normal.Lookup(z)
			if err != nil {
				return err
			}

			return a.print(cmd, report.Normal{Z: z, P: p})
		},
	}
}

func newNormalReverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse P",
		Short: "Table z whose entry is closest to P",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseArg(args[0])
			if err != nil {
				return err
			}
			z, err := normal.ReverseLookup(p)
			if err != nil {
				return err
			}

			return a.print(cmd, report.Normal{Z: z, P: p})
		},
	}
}

func newNormalQuantileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "quantile P",
		Short: "Exact z with Phi(z) = P",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseArg(args[0])
			if err != nil {
				return err
			}
			z, err := normal.Quantile(p)
			if err != nil {
				return err
			}

			return a.print(cmd, report.Normal{Z: z, P: p})
		},
	}
}

func newNormalTableCmd() *cobra.Command {
	var from, to float64
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print rows of the z-table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return normal.WriteTable(cmd.OutOrStdout(), from, to)
		},
	}
	cmd.Flags().Float64Var(&from, "from", 0, "first z")
	cmd.Flags().Float64Var(&to, "to", normal.TableMax, "last z")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenpath-labs/greenpath/internal/config"
	"github.com/greenpath-labs/greenpath/internal/emissions"
	"github.com/greenpath-labs/greenpath/internal/tui"
)

// newTaxCmd creates the "tax" subcommand: price a CO2 quantity under a
// carbon tax.
func newTaxCmd() *cobra.Command {
	var (
		co2Kg float64
		rate  float64
	)

	cmd := &cobra.Command{
		Use:     "tax",
		Short:   "Price CO2 emissions under a carbon tax",
		Example: `  greenpath tax --co2-kg 602 --rate 50`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveFormat(cmd)
			if err != nil {
				return err
			}

			if co2Kg < 0 {
				return fmt.Errorf("%w: co2-kg must be >= 0, got %v", emissions.ErrInvalidInput, co2Kg)
			}
			if !cmd.Flags().Changed("rate") {
				rate = config.GetGlobal().Engine.CarbonTaxRate
			}

			tax := emissions.NewEngine(nil).CarbonTax(co2Kg, rate)

			if format == formatJSON {
				return printJSON(cmd.OutOrStdout(), tax)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderTax(tax))
			return nil
		},
	}

	cmd.Flags().Float64Var(&co2Kg, "co2-kg", 0, "CO2 quantity in kg")
	cmd.Flags().Float64Var(&rate, "rate", emissions.DefaultCarbonTaxRate, "tax rate in USD per tonne CO2")
	addOutputFlag(cmd)

	_ = cmd.MarkFlagRequired("co2-kg")

	return cmd
}

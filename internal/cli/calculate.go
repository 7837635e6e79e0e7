package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenpath-labs/greenpath/internal/config"
	"github.com/greenpath-labs/greenpath/internal/emissions"
	"github.com/greenpath-labs/greenpath/internal/tui"
)

// calculateParams holds the flag values for the calculate command.
type calculateParams struct {
	Distance float64
	Weight   float64
	Mode     string
	WithTax  bool
	TaxRate  float64
}

// newCalculateCmd creates the "calculate" subcommand: emissions for a
// single shipment, optionally priced under a carbon tax.
func newCalculateCmd() *cobra.Command {
	var params calculateParams

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate CO2 emissions for a single shipment",
		Example: `  greenpath calculate --distance 500 --weight 2 --mode rail
  greenpath calculate --distance 500 --weight 2 --mode air_cargo --tax`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCalculate(cmd, params)
		},
	}

	cmd.Flags().Float64Var(&params.Distance, "distance", 0, "distance in km")
	cmd.Flags().Float64Var(&params.Weight, "weight", 0, "cargo weight in tonnes")
	cmd.Flags().StringVar(&params.Mode, "mode", "", "transport mode (see 'greenpath factors')")
	cmd.Flags().BoolVar(&params.WithTax, "tax", false, "include carbon tax cost")
	cmd.Flags().Float64Var(&params.TaxRate, "tax-rate", 0, "carbon tax rate in USD per tonne (default from config)")
	addOutputFlag(cmd)

	_ = cmd.MarkFlagRequired("distance")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("mode")

	return cmd
}

func executeCalculate(cmd *cobra.Command, params calculateParams) error {
	format, err := resolveFormat(cmd)
	if err != nil {
		return err
	}

	mode, err := emissions.ParseMode(params.Mode)
	if err != nil {
		return err
	}

	engine := emissions.NewEngine(nil)
	result, err := engine.Calculate(emissions.ShipmentSpec{
		DistanceKm:   params.Distance,
		WeightTonnes: params.Weight,
		Mode:         mode,
	})
	if err != nil {
		return err
	}

	logger.Debug().
		Float64("distance_km", params.Distance).
		Float64("weight_tonnes", params.Weight).
		Str("mode", string(mode)).
		Float64("co2_kg", result.CO2Kg).
		Msg("calculated shipment emissions")

	taxRate := params.TaxRate
	if taxRate == 0 {
		taxRate = config.GetGlobal().Engine.CarbonTaxRate
	}

	out := cmd.OutOrStdout()
	if format == formatJSON {
		payload := struct {
			emissions.EmissionResult
			Tax *emissions.TaxAssessment `json:"carbon_tax,omitempty"`
		}{EmissionResult: result}
		if params.WithTax {
			tax := engine.CarbonTax(result.CO2Kg, taxRate)
			payload.Tax = &tax
		}
		return printJSON(out, payload)
	}

	fmt.Fprintln(out, tui.RenderResult(result))
	if params.WithTax {
		fmt.Fprintln(out, tui.RenderTax(engine.CarbonTax(result.CO2Kg, taxRate)))
	}
	return nil
}

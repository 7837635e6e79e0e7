package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenpath-labs/greenpath/internal/emissions"
	"github.com/greenpath-labs/greenpath/internal/tui"
)

// newCompareCmd creates the "compare" subcommand: ranked emissions across
// transport modes for one shipment.
func newCompareCmd() *cobra.Command {
	var (
		distance float64
		weight   float64
		modes    []string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare CO2 emissions across transport modes",
		Example: `  greenpath compare --distance 500 --weight 2
  greenpath compare --distance 500 --weight 2 --modes rail,road_truck`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveFormat(cmd)
			if err != nil {
				return err
			}

			requested, err := parseModes(modes)
			if err != nil {
				return err
			}

			rows := emissions.NewEngine(nil).Compare(distance, weight, requested)
			logger.Debug().Int("rows", len(rows)).Msg("compared transport modes")

			if format == formatJSON {
				return printJSON(cmd.OutOrStdout(), rows)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderComparison(rows))
			return nil
		},
	}

	cmd.Flags().Float64Var(&distance, "distance", 0, "distance in km")
	cmd.Flags().Float64Var(&weight, "weight", 0, "cargo weight in tonnes")
	cmd.Flags().StringSliceVar(&modes, "modes", nil, "modes to compare (default all)")
	addOutputFlag(cmd)

	_ = cmd.MarkFlagRequired("distance")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}

// parseModes converts flag values into transport modes. Unknown names are
// rejected here so the caller gets a clear error instead of a silently
// skipped row.
func parseModes(names []string) ([]emissions.TransportMode, error) {
	if len(names) == 0 {
		return nil, nil
	}
	modes := make([]emissions.TransportMode, 0, len(names))
	for _, name := range names {
		mode, err := emissions.ParseMode(name)
		if err != nil {
			return nil, err
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

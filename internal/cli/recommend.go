package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenpath-labs/greenpath/internal/config"
	"github.com/greenpath-labs/greenpath/internal/emissions"
	"github.com/greenpath-labs/greenpath/internal/tui"
)

// newRecommendCmd creates the "recommend" subcommand: the greenest mode
// within a travel-time penalty budget.
func newRecommendCmd() *cobra.Command {
	var (
		distance   float64
		weight     float64
		modes      []string
		maxPenalty float64
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend the greenest transport mode within a time budget",
		Example: `  greenpath recommend --distance 500 --weight 2
  greenpath recommend --distance 500 --weight 2 --modes road_truck,rail --max-time-penalty 25`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveFormat(cmd)
			if err != nil {
				return err
			}

			engine := emissions.NewEngine(nil)

			candidates, err := parseModes(modes)
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				candidates = engine.Catalog().AllModes()
			}

			if !cmd.Flags().Changed("max-time-penalty") {
				maxPenalty = config.GetGlobal().Engine.MaxTimePenaltyPct
			}

			rec, err := engine.RecommendGreenest(distance, weight, candidates, maxPenalty)
			if err != nil {
				return err
			}

			logger.Debug().
				Str("recommended_mode", string(rec.RecommendedMode)).
				Bool("within_time_constraint", rec.WithinTimeConstraint).
				Msg("computed green recommendation")

			if format == formatJSON {
				return printJSON(cmd.OutOrStdout(), rec)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderRecommendation(rec))
			return nil
		},
	}

	cmd.Flags().Float64Var(&distance, "distance", 0, "distance in km")
	cmd.Flags().Float64Var(&weight, "weight", 0, "cargo weight in tonnes")
	cmd.Flags().StringSliceVar(&modes, "modes", nil, "candidate modes (default all)")
	cmd.Flags().Float64Var(&maxPenalty, "max-time-penalty", emissions.DefaultMaxTimePenaltyPct,
		"maximum acceptable time penalty in percent")
	addOutputFlag(cmd)

	_ = cmd.MarkFlagRequired("distance")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}

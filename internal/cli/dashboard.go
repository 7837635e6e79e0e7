package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/greenpath-labs/greenpath/internal/config"
	"github.com/greenpath-labs/greenpath/internal/emissions"
	"github.com/greenpath-labs/greenpath/internal/tui"
)

// newDashboardCmd creates the "dashboard" subcommand: the interactive
// emissions dashboard.
func newDashboardCmd() *cobra.Command {
	var (
		distance   float64
		weight     float64
		maxPenalty float64
	)

	cmd := &cobra.Command{
		Use:     "dashboard",
		Short:   "Interactive emissions dashboard",
		Example: `  greenpath dashboard --distance 500 --weight 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return fmt.Errorf("dashboard requires an interactive terminal")
			}
			if distance <= 0 || weight <= 0 {
				return fmt.Errorf("%w: distance and weight must be positive", emissions.ErrInvalidInput)
			}

			cfg := config.GetGlobal()
			if !cmd.Flags().Changed("max-time-penalty") {
				maxPenalty = cfg.Engine.MaxTimePenaltyPct
			}

			model := tui.NewDashboard(emissions.NewEngine(nil),
				distance, weight, maxPenalty, cfg.Engine.CarbonTaxRate)

			logger.Debug().Msg("starting dashboard")
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().Float64Var(&distance, "distance", 500, "distance in km")
	cmd.Flags().Float64Var(&weight, "weight", 2, "cargo weight in tonnes")
	cmd.Flags().Float64Var(&maxPenalty, "max-time-penalty", emissions.DefaultMaxTimePenaltyPct,
		"maximum acceptable time penalty in percent")

	return cmd
}

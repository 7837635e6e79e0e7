// Package cli wires the greenpath command tree.
package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/greenpath-labs/greenpath/internal/config"
	"github.com/greenpath-labs/greenpath/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root Cobra command for the greenpath CLI.
// It wires up config loading, logging, and the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logCloser io.Closer

	cmd := &cobra.Command{
		Use:     "greenpath",
		Short:   "Freight CO2 emission calculator",
		Long:    "GreenPath: estimate freight CO2 emissions and find greener transport modes",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			config.SetGlobal(cfg)

			logCfg := logging.Config{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				File:   cfg.Logging.File,
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logCfg.Level = "debug"
				logCfg.Format = "console"
				logCfg.File = ""
			}

			root, closer, err := logging.New(logCfg)
			if err != nil {
				return err
			}
			logCloser = closer
			logger = logging.ComponentLogger(root, "cli")

			logger.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default $HOME/.greenpath/config.yaml)")

	cmd.AddCommand(
		newCalculateCmd(),
		newCompareCmd(),
		newRecommendCmd(),
		newTaxCmd(),
		newFactorsCmd(),
		newImportCmd(),
		newSampleCmd(),
		newRouteCmd(),
		newDashboardCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Emissions for a 500 km, 2 tonne rail shipment
  greenpath calculate --distance 500 --weight 2 --mode rail

  # Compare every transport mode for the same shipment
  greenpath compare --distance 500 --weight 2

  # Greenest mode within a 10% time penalty
  greenpath recommend --distance 500 --weight 2 --modes road_truck,rail,ship_container

  # Price emissions under a carbon tax
  greenpath tax --co2-kg 602 --rate 50

  # Import shipments from a CSV file and calculate in bulk
  greenpath import shipments.csv

  # Generate demonstration data
  greenpath sample --count 100 --format csv > shipments.csv

  # Interactive dashboard
  greenpath dashboard --distance 500 --weight 2`

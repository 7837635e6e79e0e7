package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenpath-labs/greenpath/internal/sample"
)

// newSampleCmd creates the "sample" subcommand: random demonstration
// shipments in CSV or JSON form.
func newSampleCmd() *cobra.Command {
	var (
		count      int
		seed       int64
		format     string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate demonstration shipment data",
		Example: `  greenpath sample --count 100 --format csv > shipments.csv
  greenpath sample --count 10 --seed 42 --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count <= 0 {
				return fmt.Errorf("count must be positive, got %d", count)
			}

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			shipments := sample.NewGenerator(seed).Shipments(count)
			logger.Debug().Int("count", count).Int64("seed", seed).Msg("generated sample shipments")

			out := cmd.OutOrStdout()
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			switch format {
			case "csv":
				return sample.WriteCSV(out, shipments)
			case "json":
				return printJSON(out, shipments)
			default:
				return fmt.Errorf("unsupported sample format: %s (want csv or json)", format)
			}
		},
	}

	cmd.Flags().IntVar(&count, "count", 100, "number of shipments to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or json")
	cmd.Flags().StringVar(&outputPath, "out", "", "write to file instead of stdout")

	return cmd
}

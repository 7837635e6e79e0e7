package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greenpath-labs/greenpath/internal/emissions"
	"github.com/greenpath-labs/greenpath/internal/emissions/batch"
	"github.com/greenpath-labs/greenpath/internal/ingest"
	"github.com/greenpath-labs/greenpath/internal/tui"
)

// importRow is one rendered line of an import run.
type importRow struct {
	TrackingNumber string  `json:"tracking_number"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	Mode           string  `json:"transport_mode"`
	CO2Kg          float64 `json:"co2_emissions_kg,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// importReport is the full JSON payload of an import run.
type importReport struct {
	Summary   batch.Summary `json:"summary"`
	Rows      []importRow   `json:"rows"`
	RowErrors []string      `json:"file_errors,omitempty"`
}

// newImportCmd creates the "import" subcommand: bulk emission calculation
// for shipments read from a CSV or Excel file.
func newImportCmd() *cobra.Command {
	var (
		sheet   string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Calculate emissions for shipments from a CSV or Excel file",
		Example: `  greenpath import shipments.csv
  greenpath import shipments.xlsx --sheet Imports`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeImport(cmd, args[0], sheet, workers)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name for Excel files (default Sheet1)")
	cmd.Flags().IntVar(&workers, "workers", batch.DefaultWorkers, "concurrent calculation workers")
	addOutputFlag(cmd)

	return cmd
}

func executeImport(cmd *cobra.Command, path, sheet string, workers int) error {
	format, err := resolveFormat(cmd)
	if err != nil {
		return err
	}

	parsed, err := readShipmentFile(path, sheet)
	if err != nil {
		return err
	}

	logger.Info().
		Str("file", path).
		Int("records", len(parsed.Records)).
		Int("rejected_rows", len(parsed.Errors)).
		Msg("imported shipment file")

	// Records with an unknown mode still reach the batch so their failure
	// shows up as a row outcome rather than disappearing silently.
	specs := make([]emissions.ShipmentSpec, len(parsed.Records))
	for i, record := range parsed.Records {
		specs[i] = emissions.ShipmentSpec{
			DistanceKm:   record.DistanceKm,
			WeightTonnes: record.WeightTonnes,
			Mode:         emissions.TransportMode(record.Mode),
		}
	}

	processor := batch.NewProcessor(emissions.NewEngine(nil), workers)
	outcomes, err := processor.Run(cmd.Context(), specs)
	if err != nil {
		return err
	}

	report := importReport{Summary: batch.Summarize(outcomes)}
	for i, outcome := range outcomes {
		record := parsed.Records[i]
		row := importRow{
			TrackingNumber: record.TrackingNumber,
			Origin:         record.Origin,
			Destination:    record.Destination,
			Mode:           record.Mode,
		}
		if outcome.Err != nil {
			row.Error = outcome.Err.Error()
		} else {
			row.CO2Kg = outcome.Result.CO2Kg
		}
		report.Rows = append(report.Rows, row)
	}
	for _, rowErr := range parsed.Errors {
		report.RowErrors = append(report.RowErrors, rowErr.Error())
	}

	out := cmd.OutOrStdout()
	if format == formatJSON {
		return printJSON(out, report)
	}

	for _, row := range report.Rows {
		if row.Error != "" {
			fmt.Fprintf(out, "%-28s %-14s %s\n", row.TrackingNumber, row.Mode, tui.WarnStyle.Render(row.Error))
			continue
		}
		fmt.Fprintf(out, "%-28s %-14s %12s kg\n", row.TrackingNumber, row.Mode, tui.FormatKg(row.CO2Kg))
	}
	for _, rowErr := range report.RowErrors {
		fmt.Fprintln(out, tui.WarnStyle.Render("skipped "+rowErr))
	}
	fmt.Fprintf(out, "\n%d shipments, %d calculated, %d failed, %s kg CO2 total\n",
		report.Summary.Total, report.Summary.Succeeded, report.Summary.Failed,
		tui.FormatKg(report.Summary.TotalCO2Kg))
	return nil
}

// readShipmentFile picks the parser from the file extension.
func readShipmentFile(path, sheet string) (ingest.Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return ingest.Result{}, err
		}
		defer f.Close()
		return ingest.ReadCSV(f)
	case ".xlsx":
		return ingest.ReadExcel(path, sheet)
	default:
		return ingest.Result{}, fmt.Errorf("unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/greenpath-labs/greenpath/internal/config"
)

// Output format names accepted by --output.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// addOutputFlag registers the --output flag with the configured default.
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "output format: table or json (default from config)")
}

// resolveFormat returns the effective output format for cmd, falling back
// to the configured default when the flag is unset.
func resolveFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = config.GetGlobal().Output.DefaultFormat
	}
	switch format {
	case formatTable, formatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

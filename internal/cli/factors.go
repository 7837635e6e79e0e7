package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenpath-labs/greenpath/internal/emissions"
	"github.com/greenpath-labs/greenpath/internal/tui"
)

// newFactorsCmd creates the "factors" subcommand: the emission factor
// catalog, ascending by factor value.
func newFactorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "factors",
		Short:   "Show the emission factor catalog",
		Example: `  greenpath factors`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveFormat(cmd)
			if err != nil {
				return err
			}

			table := emissions.DefaultCatalog().Table()
			if format == formatJSON {
				return printJSON(cmd.OutOrStdout(), table)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderFactorTable(table))
			return nil
		},
	}

	addOutputFlag(cmd)
	return cmd
}

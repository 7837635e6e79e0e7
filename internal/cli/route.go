package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greenpath-labs/greenpath/internal/route"
)

// newRouteCmd creates the "route" subcommand: the placeholder
// straight-line route optimizer.
func newRouteCmd() *cobra.Command {
	var (
		from string
		to   string
		mode string
	)

	cmd := &cobra.Command{
		Use:     "route",
		Short:   "Optimize a route between two points (straight-line placeholder)",
		Example: `  greenpath route --from 0,0 --to 30,40 --mode driving`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := parsePoint(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			end, err := parsePoint(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			return printJSON(cmd.OutOrStdout(), route.Optimize(start, end, mode))
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start point as x,y")
	cmd.Flags().StringVar(&to, "to", "", "end point as x,y")
	cmd.Flags().StringVar(&mode, "mode", "driving", "travel mode label")

	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// parsePoint parses "x,y" into a route.Point.
func parsePoint(s string) (route.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return route.Point{}, fmt.Errorf("want x,y coordinates, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return route.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return route.Point{}, err
	}
	return route.Point{X: x, Y: y}, nil
}

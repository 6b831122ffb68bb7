package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/planner/internal/report"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show schedule statistics",
		Long: `Show totals, today's and this month's event counts, the number of
distinct categories, the priority distribution and the next upcoming event.

"Today" is taken in the configured time zone.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(rootOpts, cmd, func(ctx context.Context, a *app) error {
				st := a.sched.Statistics(a.today())
				return a.out.Render(st, func(w io.Writer) error {
					return report.WriteStats(w, st)
				})
			})
		},
	}

	return cmd
}

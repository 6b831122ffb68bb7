package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Date  string // optional - only events on this date
	Today bool
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Long: `List events in their stored order.

Examples:
  planner list
  planner list --today
  planner list --date 15/06/2025 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "only events on DD/MM/YYYY")
	cmd.Flags().BoolVar(&opts.Today, "today", false, "only today's events")
	cmd.MarkFlagsMutuallyExclusive("date", "today")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	return withApp(opts.RootOptions, cmd, func(ctx context.Context, a *app) error {
		switch {
		case opts.Today:
			today := a.today()
			events := a.sched.ListForDate(today)
			return a.out.Render(events, func(w io.Writer) error {
				return writeSection(w, headerToday(today), events, emptyToday)
			})

		case opts.Date != "":
			d, err := parseDate(opts.Date)
			if err != nil {
				return a.out.Fail(err)
			}
			events := a.sched.ListForDate(d)
			return a.out.Render(events, func(w io.Writer) error {
				return writeSection(w, headerDate(d), events, emptyDate)
			})
		}

		events := a.sched.List()
		return a.out.Render(events, func(w io.Writer) error {
			return writeAll(w, events)
		})
	})
}


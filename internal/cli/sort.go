package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/planner/internal/journal"
)

// Sort keys accepted by --by.
const (
	SortByDateTime = "datetime"
	SortByPriority = "priority"
)

// SortOptions holds flags for the sort command.
type SortOptions struct {
	*RootOptions
	By string
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SortOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Reorder the stored events",
		Long: `Reorder the stored events and save the new order.

Sorting is stable: events that compare equal keep their relative order.

Examples:
  planner sort --by datetime
  planner sort --by priority`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.By, "by", SortByDateTime, "sort key (datetime|priority)")

	return cmd
}

func runSort(opts *SortOptions, cmd *cobra.Command) error {
	return withApp(opts.RootOptions, cmd, func(ctx context.Context, a *app) error {
		msg, err := sortSchedule(a, opts.By)
		if err != nil {
			return a.out.FailWith(ExitCommandError, ErrCodeUsage, err.Error(), nil, err)
		}
		if a.sched.Len() > 0 {
			if err := a.commit(ctx, journal.Entry{Op: journal.OpSort, Field: opts.By}); err != nil {
				return a.out.Fail(err)
			}
		}

		return a.out.Render(a.sched.List(), func(w io.Writer) error {
			_, err := fmt.Fprintln(w, msg)
			return err
		})
	})
}

// sortSchedule sorts by key and returns the message to show.
func sortSchedule(a *app, key string) (string, error) {
	if key != SortByDateTime && key != SortByPriority {
		return "", fmt.Errorf("invalid sort key %q: must be %s or %s", key, SortByDateTime, SortByPriority)
	}
	if a.sched.Len() == 0 {
		return "No events to sort.", nil
	}
	if key == SortByPriority {
		a.sched.SortByPriority()
		return "Events sorted by priority.", nil
	}
	a.sched.SortByDateTime()
	return "Events sorted by date and time.", nil
}

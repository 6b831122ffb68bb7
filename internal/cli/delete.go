package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/planner/internal/journal"
	"github.com/roach88/planner/internal/report"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event",
		Long: `Delete an event by id and save the schedule.

The remaining events keep their order. Ids are never reused.

Example:
  planner delete 3`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDelete(opts *RootOptions, idArg string, cmd *cobra.Command) error {
	return withApp(opts, cmd, func(ctx context.Context, a *app) error {
		id, err := parseID(idArg)
		if err != nil {
			return a.out.Fail(err)
		}

		removed, err := a.sched.Delete(id)
		if err != nil {
			return a.out.Fail(err)
		}
		a.logger.Debug("event deleted", "id", id)

		entry := journal.Entry{Op: journal.OpDelete, EventID: id, Event: eventPtr(removed)}
		if err := a.commit(ctx, entry); err != nil {
			return a.out.Fail(err)
		}

		return a.out.Render(removed, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "Deleting event: %s\n", report.FormatLine(-1, removed)); err != nil {
				return err
			}
			_, err := fmt.Fprintln(w, "Event deleted successfully.")
			return err
		})
	})
}

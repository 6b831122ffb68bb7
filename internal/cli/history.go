package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/planner/internal/journal"
	"github.com/roach88/planner/internal/report"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	EventID int // optional - filter to one event
	Limit   int
}

// historyLayout formats journal timestamps.
const historyLayout = "02/01/2006 15:04:05"

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the change journal",
		Long: `Show recorded adds, edits, deletes and sorts, oldest first.

Requires journal_file to be set (planner.db by default).

Examples:
  planner history
  planner history --event 3
  planner history --limit 20 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.EventID, "event", 0, "only entries for this event id")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "only the most recent N entries")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	return withApp(opts.RootOptions, cmd, func(ctx context.Context, a *app) error {
		if a.journal == nil {
			err := errors.New("journal is disabled or unavailable")
			return a.out.FailWith(ExitCommandError, ErrCodeJournal, err.Error(), nil, err)
		}

		entries, err := a.journal.List(ctx, journal.Filter{EventID: opts.EventID, Limit: opts.Limit})
		if err != nil {
			return a.out.FailWith(ExitCommandError, ErrCodeJournal, "failed to read journal", err.Error(), err)
		}

		return a.out.Render(entries, func(w io.Writer) error {
			return writeHistory(w, a, entries)
		})
	})
}

func writeHistory(w io.Writer, a *app, entries []journal.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No history recorded.")
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "#%d %s %-6s %s\n", e.Seq, e.RecordedAt.In(a.loc).Format(historyLayout), e.Op, describeEntry(e)); err != nil {
			return err
		}
	}
	return nil
}

func describeEntry(e journal.Entry) string {
	switch {
	case e.Op == journal.OpSort:
		return "by " + e.Field
	case e.Event == nil:
		return fmt.Sprintf("[ID: %d]", e.EventID)
	case e.Field != "":
		return fmt.Sprintf("%s (%s)", report.FormatLine(-1, *e.Event), e.Field)
	}
	return report.FormatLine(-1, *e.Event)
}

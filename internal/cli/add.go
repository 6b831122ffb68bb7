package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/planner/internal/event"
	"github.com/roach88/planner/internal/journal"
	"github.com/roach88/planner/internal/recur"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Date        string
	Time        string
	Description string
	Priority    int
	Category    string
	Repeat      string // optional - daily|weekly|monthly|yearly
	Count       int
}

// AddResult is the JSON payload of the add command.
type AddResult struct {
	IDs    []int         `json:"ids"`
	Events []event.Event `json:"events"`
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event",
		Long: `Add an event to the schedule and save it.

With --repeat the event is created --count times at the given frequency,
all or nothing: if the series does not fit in the schedule, no event is
added.

Examples:
  planner add --date 15/06/2025 --time 09:00 --description Standup --priority 2 --category Work
  planner add --date 01/07/2025 --time 18:30 --description Gym --repeat weekly --count 8`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "event date DD/MM/YYYY (required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&opts.Time, "time", "", "event time HH:MM (required)")
	_ = cmd.MarkFlagRequired("time")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "event description")
	cmd.Flags().IntVarP(&opts.Priority, "priority", "p", 3, "priority 1-5, 1=highest")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "event category")
	cmd.Flags().StringVar(&opts.Repeat, "repeat", "", "repeat frequency ("+strings.Join(recur.Frequencies, "|")+")")
	cmd.Flags().IntVar(&opts.Count, "count", 1, fmt.Sprintf("number of occurrences with --repeat (max %d)", recur.MaxCount))

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	return withApp(opts.RootOptions, cmd, func(ctx context.Context, a *app) error {
		if a.sched.Full() {
			return a.out.Fail(event.NewCapacityExceeded(a.sched.Capacity()))
		}

		d, err := parseDate(opts.Date)
		if err != nil {
			return a.out.Fail(err)
		}
		t, err := parseTime(opts.Time)
		if err != nil {
			return a.out.Fail(err)
		}
		draft := event.Draft{
			Date:        d,
			Time:        t,
			Description: opts.Description,
			Priority:    opts.Priority,
			Category:    opts.Category,
		}

		drafts := []event.Draft{draft}
		if opts.Repeat != "" {
			drafts, err = recur.Expand(draft, opts.Repeat, opts.Count)
			if err != nil {
				return a.out.Fail(err)
			}
		} else if cmd.Flags().Changed("count") {
			return a.out.FailWith(ExitCommandError, ErrCodeUsage, "--count requires --repeat", nil, nil)
		}

		ids, entries, err := addDrafts(a, drafts)
		if err != nil {
			return a.out.Fail(err)
		}
		if err := a.commit(ctx, entries...); err != nil {
			return a.out.Fail(err)
		}

		result := AddResult{IDs: ids, Events: make([]event.Event, 0, len(ids))}
		for _, id := range ids {
			e, _ := a.sched.Get(id)
			result.Events = append(result.Events, e)
		}
		return a.out.Render(result, func(w io.Writer) error {
			return writeAdded(w, ids)
		})
	})
}

// addDrafts adds drafts as one batch and returns the journal entries for
// the new events.
func addDrafts(a *app, drafts []event.Draft) ([]int, []journal.Entry, error) {
	ids, err := a.sched.AddAll(drafts)
	if err != nil {
		return nil, nil, err
	}
	entries := make([]journal.Entry, 0, len(ids))
	for _, id := range ids {
		e, _ := a.sched.Get(id)
		a.logger.Debug("event added", "id", id, "date", e.Date.String())
		entries = append(entries, journal.Entry{Op: journal.OpAdd, EventID: id, Event: eventPtr(e)})
	}
	return ids, entries, nil
}

func writeAdded(w io.Writer, ids []int) error {
	if len(ids) == 1 {
		_, err := fmt.Fprintf(w, "Event added successfully with ID: %d\n", ids[0])
		return err
	}
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = fmt.Sprint(id)
	}
	_, err := fmt.Fprintf(w, "%d events added successfully with IDs: %s\n", len(ids), strings.Join(strs, ", "))
	return err
}

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/planner/internal/event"
	"github.com/roach88/planner/internal/journal"
	"github.com/roach88/planner/internal/schedule"
)

// EditOptions holds flags for the edit command. Exactly one field flag is
// accepted per invocation.
type EditOptions struct {
	*RootOptions
	Date        string
	Time        string
	Description string
	Priority    string
	Category    string
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change one field of an event",
		Long: `Change one field of an event and save the schedule.

The new value is validated first; on failure the event is unchanged.

Examples:
  planner edit 3 --date 20/06/2025
  planner edit 3 --priority 1
  planner edit 3 --category ""`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "new date DD/MM/YYYY")
	cmd.Flags().StringVar(&opts.Time, "time", "", "new time HH:MM")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "new description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "new priority 1-5")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "new category")
	fields := []string{"date", "time", "description", "priority", "category"}
	cmd.MarkFlagsMutuallyExclusive(fields...)
	cmd.MarkFlagsOneRequired(fields...)

	return cmd
}

// mutation builds the change selected by the flags that were set.
func (opts *EditOptions) mutation(cmd *cobra.Command) (schedule.Mutation, error) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("date"):
		d, err := parseDate(opts.Date)
		if err != nil {
			return schedule.Mutation{}, err
		}
		return schedule.SetDate(d), nil
	case flags.Changed("time"):
		t, err := parseTime(opts.Time)
		if err != nil {
			return schedule.Mutation{}, err
		}
		return schedule.SetTime(t), nil
	case flags.Changed("description"):
		return schedule.SetDescription(opts.Description), nil
	case flags.Changed("priority"):
		p, err := parsePriority(opts.Priority)
		if err != nil {
			return schedule.Mutation{}, err
		}
		return schedule.SetPriority(p), nil
	case flags.Changed("category"):
		return schedule.SetCategory(opts.Category), nil
	}
	return schedule.Mutation{}, fmt.Errorf("no field to edit")
}

func runEdit(opts *EditOptions, idArg string, cmd *cobra.Command) error {
	return withApp(opts.RootOptions, cmd, func(ctx context.Context, a *app) error {
		id, err := parseID(idArg)
		if err != nil {
			return a.out.Fail(err)
		}
		m, err := opts.mutation(cmd)
		if err != nil {
			return a.out.Fail(err)
		}

		updated, err := applyEdit(a, id, m)
		if err != nil {
			return a.out.Fail(err)
		}
		entry := journal.Entry{Op: journal.OpEdit, EventID: id, Field: string(m.Field()), Event: eventPtr(updated)}
		if err := a.commit(ctx, entry); err != nil {
			return a.out.Fail(err)
		}

		return a.out.Render(updated, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, updatedMessage(m.Field()))
			return err
		})
	})
}

// applyEdit applies m to event id and returns the event as changed.
func applyEdit(a *app, id int, m schedule.Mutation) (event.Event, error) {
	if err := a.sched.Edit(id, m); err != nil {
		return event.Event{}, err
	}
	updated, err := a.sched.Get(id)
	if err != nil {
		return event.Event{}, err
	}
	a.logger.Debug("event edited", "id", id, "field", string(m.Field()))
	return updated, nil
}

func updatedMessage(f schedule.Field) string {
	switch f {
	case schedule.FieldDate:
		return "Date updated."
	case schedule.FieldTime:
		return "Time updated."
	case schedule.FieldDescription:
		return "Description updated."
	case schedule.FieldPriority:
		return "Priority updated."
	case schedule.FieldCategory:
		return "Category updated."
	}
	return "Event updated."
}

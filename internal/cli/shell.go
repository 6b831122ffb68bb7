package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/planner/internal/event"
	"github.com/roach88/planner/internal/journal"
	"github.com/roach88/planner/internal/report"
	"github.com/roach88/planner/internal/schedule"
)

// errInputClosed ends the shell when stdin reaches EOF or can no longer be
// read.
var errInputClosed = errors.New("input closed")

const mainMenu = `
===== SCHEDULE MANAGER =====
1. Add Event
2. View All Events
3. View Today's Events
4. Search Events
5. Edit Event
6. Delete Event
7. Sort Events
8. Save Schedule
9. Export to Text File
10. Show Statistics
11. Help
0. Exit`

// NewShellCommand creates the interactive shell command.
func NewShellCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive menu",
		Long: `Start the interactive numbered menu.

Changes are kept in memory until "Save Schedule" or "Exit"; exiting (or
closing stdin) saves the schedule. Changes reach the journal once they have
been saved.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(rootOpts, cmd, func(ctx context.Context, a *app) error {
				sh := newShell(ctx, a, cmd.InOrStdin(), cmd.OutOrStdout())
				return sh.run()
			})
		},
	}

	return cmd
}

// shell drives the numbered menu over a line-oriented reader.
type shell struct {
	ctx context.Context
	a   *app
	in  *bufio.Scanner
	out io.Writer

	pending []journal.Entry // changes not yet saved
	readErr error           // why input stopped, if not EOF
}

func newShell(ctx context.Context, a *app, in io.Reader, out io.Writer) *shell {
	return &shell{ctx: ctx, a: a, in: bufio.NewScanner(in), out: out}
}

func (s *shell) say(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// ask prints prompt and reads one line.
func (s *shell) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		s.readErr = s.in.Err()
		return "", errInputClosed
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

// askInt reads one integer; ok is false when the line is not a number.
func (s *shell) askInt(prompt string) (n int, ok bool, err error) {
	line, err := s.ask(prompt)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	return n, convErr == nil, nil
}

func (s *shell) run() error {
	s.greet()
	for {
		s.say("%s", mainMenu)
		choice, ok, err := s.askInt("Choice: ")
		if errors.Is(err, errInputClosed) {
			return s.close()
		}
		if err != nil {
			return err
		}
		if !ok {
			s.say("Invalid input. Please enter a number.")
			continue
		}
		if choice == 0 {
			return s.exit()
		}

		err = s.dispatch(choice)
		if errors.Is(err, errInputClosed) {
			return s.close()
		}
		if err != nil {
			return err
		}
	}
}

func (s *shell) greet() {
	a := s.a
	switch {
	case a.loadErr != nil:
		s.say("Could not load schedule: %v", a.loadErr)
	case a.loaded.Missing:
		s.say("No existing schedule file found.")
	default:
		for range a.loaded.Skipped {
			s.say("Warning: Skipped invalid event record.")
		}
		s.say("Schedule loaded successfully. %d events found.", a.sched.Len())
	}
}

func (s *shell) dispatch(choice int) error {
	switch choice {
	case 1:
		return s.addEvent()
	case 2:
		s.say("")
		return writeAll(s.out, s.a.sched.List())
	case 3:
		today := s.a.today()
		s.say("")
		return writeSection(s.out, headerToday(today), s.a.sched.ListForDate(today), emptyToday)
	case 4:
		return s.search()
	case 5:
		return s.editEvent()
	case 6:
		return s.deleteEvent()
	case 7:
		return s.sortEvents()
	case 8:
		s.save()
		return nil
	case 9:
		return s.export()
	case 10:
		s.say("")
		return report.WriteStats(s.out, s.a.sched.Statistics(s.a.today()))
	case 11:
		s.say("")
		return report.WriteHelp(s.out)
	}
	s.say("Invalid choice. Please try again.")
	return nil
}

func (s *shell) exit() error {
	s.say("Saving schedule before exit...")
	s.save()
	s.say("Goodbye!")
	return nil
}

// close ends the session after input stopped. The schedule is saved first;
// a read failure is then returned to the caller.
func (s *shell) close() error {
	s.exit()
	if s.readErr != nil {
		return fmt.Errorf("read input: %w", s.readErr)
	}
	return nil
}

// save writes the schedule and then journals the changes it carried.
func (s *shell) save() {
	if err := s.a.save(); err != nil {
		s.say("Error saving schedule: %v", err)
		return
	}
	s.a.record(s.ctx, s.pending...)
	s.pending = s.pending[:0]
	s.say("Schedule saved successfully.")
}

// track queues journal entries until the next successful save.
func (s *shell) track(entries ...journal.Entry) {
	s.pending = append(s.pending, entries...)
}

// askDate prompts until a valid date is entered.
func (s *shell) askDate(prompt string) (event.Date, error) {
	for {
		line, err := s.ask(prompt)
		if err != nil {
			return event.Date{}, err
		}
		v, ok := parseInts(line, 3)
		if !ok {
			s.say("Invalid input format. Please use DD MM YYYY.")
			continue
		}
		d := event.Date{Day: v[0], Month: v[1], Year: v[2]}
		if !d.Valid() {
			s.say("Invalid date. Please try again.")
			continue
		}
		return d, nil
	}
}

// askTime prompts until a valid time is entered.
func (s *shell) askTime(prompt string) (event.TimeOfDay, error) {
	for {
		line, err := s.ask(prompt)
		if err != nil {
			return event.TimeOfDay{}, err
		}
		v, ok := parseInts(line, 2)
		if !ok {
			s.say("Invalid input format. Please use HH MM.")
			continue
		}
		t := event.TimeOfDay{Hour: v[0], Minute: v[1]}
		if !t.Valid() {
			s.say("Invalid time. Please try again.")
			continue
		}
		return t, nil
	}
}

// askPriority prompts until a priority in range is entered.
func (s *shell) askPriority(prompt string) (int, error) {
	for {
		p, ok, err := s.askInt(prompt)
		if err != nil {
			return 0, err
		}
		if !ok {
			s.say("Invalid input. Please enter a number.")
			continue
		}
		if !event.ValidPriority(p) {
			s.say("Priority must be between %d and %d.", event.MinPriority, event.MaxPriority)
			continue
		}
		return p, nil
	}
}

func (s *shell) addEvent() error {
	if s.a.sched.Full() {
		s.say("Event list full! Please delete some events first.")
		return nil
	}

	var (
		d   event.Draft
		err error
	)
	if d.Date, err = s.askDate("Enter date (DD MM YYYY): "); err != nil {
		return err
	}
	if d.Time, err = s.askTime("Enter time (HH MM): "); err != nil {
		return err
	}
	if d.Description, err = s.ask("Enter description: "); err != nil {
		return err
	}
	if d.Priority, err = s.askPriority("Enter priority (1-5, 1=highest): "); err != nil {
		return err
	}
	if d.Category, err = s.ask("Enter category: "); err != nil {
		return err
	}

	ids, entries, err := addDrafts(s.a, []event.Draft{d})
	if err != nil {
		s.say("Error: %v", err)
		return nil
	}
	s.track(entries...)
	s.say("Event added successfully with ID: %d", ids[0])
	return nil
}

func (s *shell) search() error {
	if s.a.sched.Len() == 0 {
		s.say("No events to search.")
		return nil
	}

	s.say("")
	s.say("===== SEARCH OPTIONS =====")
	s.say("1. Search by keyword")
	s.say("2. Search by date")
	s.say("3. Search by category")
	choice, ok, err := s.askInt("Choice: ")
	if err != nil {
		return err
	}
	if !ok {
		s.say("Invalid input.")
		return nil
	}

	switch choice {
	case 1:
		keyword, err := s.ask("Enter keyword to search: ")
		if err != nil {
			return err
		}
		s.say("")
		return writeKeywordResults(s.out, s.a.sched.FindByKeyword(keyword))
	case 2:
		line, err := s.ask("Enter date to search (DD MM YYYY): ")
		if err != nil {
			return err
		}
		v, ok := parseInts(line, 3)
		if !ok {
			s.say("Invalid input format.")
			return nil
		}
		d := event.Date{Day: v[0], Month: v[1], Year: v[2]}
		if !d.Valid() {
			s.say("Invalid date.")
			return nil
		}
		s.say("")
		return writeSection(s.out, headerDate(d), s.a.sched.ListForDate(d), emptyDate)
	case 3:
		category, err := s.ask("Enter category to search: ")
		if err != nil {
			return err
		}
		s.say("")
		return writeSection(s.out, headerCategory, s.a.sched.FindByCategory(category), emptyCategory)
	}
	s.say("Invalid choice.")
	return nil
}

func (s *shell) editEvent() error {
	if s.a.sched.Len() == 0 {
		s.say("No events to edit.")
		return nil
	}

	id, ok, err := s.askInt("Enter event ID to edit: ")
	if err != nil {
		return err
	}
	if !ok {
		s.say("Invalid input.")
		return nil
	}
	current, err := s.a.sched.Get(id)
	if err != nil {
		s.say("Event ID not found.")
		return nil
	}

	s.say("Editing event: %s", report.FormatLine(-1, current))
	s.say("")
	s.say("===== EDIT OPTIONS =====")
	s.say("1. Edit date")
	s.say("2. Edit time")
	s.say("3. Edit description")
	s.say("4. Edit priority")
	s.say("5. Edit category")
	s.say("0. Cancel")
	choice, ok, err := s.askInt("Choice: ")
	if err != nil {
		return err
	}
	if !ok {
		s.say("Invalid input.")
		return nil
	}

	var m schedule.Mutation
	switch choice {
	case 0:
		s.say("Edit cancelled.")
		return nil
	case 1:
		line, err := s.ask("Enter new date (DD MM YYYY): ")
		if err != nil {
			return err
		}
		v, ok := parseInts(line, 3)
		if !ok {
			s.say("Invalid input format.")
			return nil
		}
		m = schedule.SetDate(event.Date{Day: v[0], Month: v[1], Year: v[2]})
	case 2:
		line, err := s.ask("Enter new time (HH MM): ")
		if err != nil {
			return err
		}
		v, ok := parseInts(line, 2)
		if !ok {
			s.say("Invalid input format.")
			return nil
		}
		m = schedule.SetTime(event.TimeOfDay{Hour: v[0], Minute: v[1]})
	case 3:
		text, err := s.ask("Enter new description: ")
		if err != nil {
			return err
		}
		m = schedule.SetDescription(text)
	case 4:
		p, ok, err := s.askInt("Enter new priority (1-5, 1=highest): ")
		if err != nil {
			return err
		}
		if !ok {
			s.say("Invalid input.")
			return nil
		}
		m = schedule.SetPriority(p)
	case 5:
		text, err := s.ask("Enter new category: ")
		if err != nil {
			return err
		}
		m = schedule.SetCategory(text)
	default:
		s.say("Invalid choice.")
		return nil
	}

	updated, err := applyEdit(s.a, id, m)
	if err != nil {
		s.say("Invalid %s. No changes made.", m.Field())
		return nil
	}
	s.track(journal.Entry{Op: journal.OpEdit, EventID: id, Field: string(m.Field()), Event: eventPtr(updated)})
	s.say("%s", updatedMessage(m.Field()))
	return nil
}

func (s *shell) deleteEvent() error {
	if s.a.sched.Len() == 0 {
		s.say("No events to delete.")
		return nil
	}

	id, ok, err := s.askInt("Enter event ID to delete: ")
	if err != nil {
		return err
	}
	if !ok {
		s.say("Invalid input.")
		return nil
	}

	removed, err := s.a.sched.Delete(id)
	if err != nil {
		s.say("Event ID not found.")
		return nil
	}
	s.track(journal.Entry{Op: journal.OpDelete, EventID: id, Event: eventPtr(removed)})
	s.say("Deleting event: %s", report.FormatLine(-1, removed))
	s.say("Event deleted successfully.")
	return nil
}

func (s *shell) sortEvents() error {
	if s.a.sched.Len() == 0 {
		s.say("No events to sort.")
		return nil
	}

	s.say("Sort by:")
	s.say("1. Date and Time")
	s.say("2. Priority")
	choice, ok, err := s.askInt("Choice: ")
	if err != nil {
		return err
	}
	if !ok {
		s.say("Invalid input.")
		return nil
	}

	var key string
	switch choice {
	case 1:
		key = SortByDateTime
	case 2:
		key = SortByPriority
	default:
		s.say("Invalid choice.")
		return nil
	}

	msg, err := sortSchedule(s.a, key)
	if err != nil {
		return err
	}
	s.track(journal.Entry{Op: journal.OpSort, Field: key})
	s.say("%s", msg)
	return nil
}

func (s *shell) export() error {
	events := s.a.sched.List()
	if len(events) == 0 {
		s.say("No events to export.")
		return nil
	}

	path, err := s.ask(fmt.Sprintf("Enter filename for export (e.g., %s): ", s.a.cfg.ExportFile))
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = s.a.cfg.ExportFile
	}
	format, _ := exportFormat("", path)

	if err := exportToFile(path, s.a, format, events); err != nil {
		s.say("Error: %v", err)
		return nil
	}
	s.say("Schedule exported to %s successfully.", path)
	return nil
}

package report

import "io"

const helpText = `===== HELP =====
This schedule manager keeps your events and appointments.

MAIN FEATURES:
1. Add Event - Create a new event with date, time, description, priority and category
2. View Events - Display all scheduled events
3. View Today's Events - Show only events scheduled for today
4. Search Events - Find events by keyword, date or category
5. Edit Event - Modify an existing event's details
6. Delete Event - Remove an event from the schedule
7. Sort Events - Organize events by date/time or priority
8. Save Schedule - Store your events to the data file
9. Export - Write a readable text report or an iCalendar file
10. Show Statistics - Display information about your events
11. Help - Show this help information

Dates are DD MM YYYY between 2000 and 2100, times are HH MM (24-hour),
priority runs from 1 (highest) to 5 (lowest).
`

// WriteHelp writes the help text.
func WriteHelp(w io.Writer) error {
	_, err := io.WriteString(w, helpText)
	return err
}

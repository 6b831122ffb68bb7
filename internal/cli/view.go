package cli

import (
	"fmt"
	"io"

	"github.com/roach88/planner/internal/event"
	"github.com/roach88/planner/internal/report"
)

// Listing headers and empty-result messages shared by the one-shot
// commands and the interactive shell.
const (
	headerAll      = "===== ALL EVENTS ====="
	headerSearch   = "===== SEARCH RESULTS ====="
	headerCategory = "===== EVENTS IN CATEGORY ====="

	emptyAll      = "No events scheduled."
	emptyToday    = "No events scheduled for today."
	emptyDate     = "No events found on this date."
	emptyKeyword  = "No matching events found."
	emptyCategory = "No events found in this category."
)

func headerToday(d event.Date) string {
	return fmt.Sprintf("===== TODAY'S EVENTS (%s) =====", d)
}

func headerDate(d event.Date) string {
	return fmt.Sprintf("===== EVENTS ON %s =====", d)
}

// writeAll lists every event under a header, or only the empty message.
func writeAll(w io.Writer, events []event.Event) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(w, emptyAll)
		return err
	}
	return writeSection(w, headerAll, events, emptyAll)
}

// writeSection writes header, then the events or the empty message.
func writeSection(w io.Writer, header string, events []event.Event, empty string) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	return report.WriteLines(w, events, empty)
}

// writeKeywordResults is writeSection plus a match count.
func writeKeywordResults(w io.Writer, events []event.Event) error {
	if err := writeSection(w, headerSearch, events, emptyKeyword); err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "Found %d matching events.\n", len(events))
	return err
}

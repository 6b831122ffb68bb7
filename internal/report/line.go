package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/planner/internal/event"
)

// PriorityStars renders p as a five-column gauge, one star per level.
func PriorityStars(p int) string {
	p = min(max(p, 0), event.MaxPriority)
	return strings.Repeat("*", p) + strings.Repeat(" ", event.MaxPriority-p)
}

// FormatLine renders e on one line. index is the event's position in the
// listing it belongs to; a negative index is left out.
func FormatLine(index int, e event.Event) string {
	body := fmt.Sprintf("[ID: %d] %s %s %s - %s [%s]",
		e.ID, e.Date, e.Time, PriorityStars(e.Priority), e.Description, e.Category)
	if index < 0 {
		return body
	}
	return fmt.Sprintf("#%d %s", index, body)
}

// WriteLines writes one FormatLine per event, or empty when there are none.
func WriteLines(w io.Writer, events []event.Event, empty string) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(w, empty)
		return err
	}
	for i, e := range events {
		if _, err := fmt.Fprintln(w, FormatLine(i, e)); err != nil {
			return err
		}
	}
	return nil
}

package report

import (
	"io"
	"slices"
	"time"

	"github.com/roach88/planner/internal/event"
)

// DefaultExportPath is the suggested export destination.
const DefaultExportPath = "schedule.txt"

// GeneratedLayout formats the export timestamp as DD/MM/YYYY HH:MM.
const GeneratedLayout = "02/01/2006 15:04"

// WriteText writes the plain-text export report. Events appear in date and
// time order; events is not modified.
func WriteText(w io.Writer, events []event.Event, generated time.Time) error {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, event.CompareDateTime)

	var b lineBuffer
	b.printf("===== SCHEDULE EXPORT =====")
	b.printf("Generated on: %s", generated.Format(GeneratedLayout))
	b.printf("")
	for i, e := range sorted {
		b.printf("Event #%d [ID: %d]", i+1, e.ID)
		b.printf("Date: %s", e.Date)
		b.printf("Time: %s", e.Time)
		b.printf("Priority: %s (%d/%d)", PriorityStars(e.Priority), e.Priority, event.MaxPriority)
		b.printf("Category: %s", e.Category)
		b.printf("Description: %s", e.Description)
		b.printf("")
	}
	return b.flush(w)
}

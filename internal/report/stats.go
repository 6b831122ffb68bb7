package report

import (
	"fmt"
	"io"

	"github.com/roach88/planner/internal/event"
	"github.com/roach88/planner/internal/schedule"
)

// WriteStats renders st as a statistics summary.
func WriteStats(w io.Writer, st schedule.Stats) error {
	if st.Total == 0 {
		_, err := fmt.Fprintln(w, "No events to analyze.")
		return err
	}

	var b lineBuffer
	b.printf("===== SCHEDULE STATISTICS =====")
	b.printf("Total events: %d", st.Total)
	b.printf("Events today: %d", st.Today)
	b.printf("Events this month: %d", st.ThisMonth)
	b.printf("Unique categories: %d", st.UniqueCategories)
	b.printf("")
	b.printf("Priority distribution:")
	for p := event.MinPriority; p <= event.MaxPriority; p++ {
		b.printf("Priority %d: %d events (%.1f%%)", p, st.PriorityCount(p), st.PriorityShare(p))
	}
	if st.NextUpcoming != nil {
		b.printf("")
		b.printf("Next upcoming event:")
		b.printf("%s", FormatLine(-1, *st.NextUpcoming))
	}
	return b.flush(w)
}

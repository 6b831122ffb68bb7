// Package recur expands a single draft into a series of recurring drafts.
package recur

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/roach88/planner/internal/event"
)

// MaxCount caps how many occurrences one expansion may produce.
const MaxCount = 100

// Frequencies lists the accepted frequency names.
var Frequencies = []string{"daily", "weekly", "monthly", "yearly"}

// Expand returns count drafts starting at d and repeating at freq.
//
// The first draft is d itself. Monthly and yearly series skip dates that do
// not exist (the 31st in short months, February 29th outside leap years), as
// RFC 5545 prescribes. Every occurrence must fall within the supported year
// range; otherwise an InvalidValue error is returned and nothing is expanded.
func Expand(d event.Draft, freq string, count int) ([]event.Draft, error) {
	if count < 1 || count > MaxCount {
		return nil, event.NewInvalidValue("count", fmt.Sprintf("count %d outside 1-%d", count, MaxCount))
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	f, err := rrule.StrToFreq(strings.ToUpper(freq))
	if err != nil || !supported(f) {
		return nil, event.NewInvalidValue("repeat", fmt.Sprintf("unknown frequency %q (want one of %s)", freq, strings.Join(Frequencies, ", ")))
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    f,
		Count:   count,
		Dtstart: d.Date.In(d.Time, time.UTC),
	})
	if err != nil {
		return nil, fmt.Errorf("build recurrence rule: %w", err)
	}

	occurrences := r.All()
	out := make([]event.Draft, 0, len(occurrences))
	for _, at := range occurrences {
		next := d
		next.Date = event.DateOf(at)
		if !next.Date.Valid() {
			return nil, event.NewInvalidValue("repeat", fmt.Sprintf("occurrence %s is outside the supported years", next.Date))
		}
		out = append(out, next)
	}
	return out, nil
}

func supported(f rrule.Frequency) bool {
	switch f {
	case rrule.DAILY, rrule.WEEKLY, rrule.MONTHLY, rrule.YEARLY:
		return true
	}
	return false
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/planner/internal/event"
)

// splitFields splits s on whitespace and any of the separators "/-.:".
func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '/', '-', '.', ':':
			return true
		}
		return false
	})
}

func parseInts(s string, n int) ([]int, bool) {
	parts := splitFields(s)
	if len(parts) != n {
		return nil, false
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// parseDate reads "DD/MM/YYYY" or "DD MM YYYY" and validates the date.
func parseDate(s string) (event.Date, error) {
	v, ok := parseInts(s, 3)
	if !ok {
		return event.Date{}, event.NewInvalidValue("date", fmt.Sprintf("invalid input format %q, use DD/MM/YYYY", s))
	}
	d := event.Date{Day: v[0], Month: v[1], Year: v[2]}
	if !d.Valid() {
		return event.Date{}, event.NewInvalidValue("date", fmt.Sprintf("invalid date %s", d))
	}
	return d, nil
}

// parseTime reads "HH:MM" or "HH MM" and validates the time.
func parseTime(s string) (event.TimeOfDay, error) {
	v, ok := parseInts(s, 2)
	if !ok {
		return event.TimeOfDay{}, event.NewInvalidValue("time", fmt.Sprintf("invalid input format %q, use HH:MM", s))
	}
	t := event.TimeOfDay{Hour: v[0], Minute: v[1]}
	if !t.Valid() {
		return event.TimeOfDay{}, event.NewInvalidValue("time", fmt.Sprintf("invalid time %s", t))
	}
	return t, nil
}

// parsePriority reads a priority in 1-5.
func parsePriority(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, event.NewInvalidValue("priority", fmt.Sprintf("invalid input %q, enter a number", s))
	}
	if !event.ValidPriority(p) {
		return 0, event.NewInvalidValue("priority", fmt.Sprintf("priority must be between %d and %d", event.MinPriority, event.MaxPriority))
	}
	return p, nil
}

// parseID reads a positive event id.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id < 1 {
		return 0, event.NewInvalidValue("id", fmt.Sprintf("invalid event id %q", s))
	}
	return id, nil
}

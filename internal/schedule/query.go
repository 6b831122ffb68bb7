package schedule

import (
	"slices"

	"github.com/roach88/planner/internal/event"
)

// List returns every event in internal order. The result is never nil.
func (s *Schedule) List() []event.Event {
	return append(make([]event.Event, 0, len(s.events)), s.events...)
}

// ListForDate returns the events on d, in internal order.
func (s *Schedule) ListForDate(d event.Date) []event.Event {
	return s.filter(func(e event.Event) bool {
		return e.Date == d
	})
}

// FindByKeyword returns the events whose description or category contains
// text, ignoring ASCII case.
func (s *Schedule) FindByKeyword(text string) []event.Event {
	text = event.Normalize(text)
	return s.filter(func(e event.Event) bool {
		return event.ContainsFold(e.Description, text) || event.ContainsFold(e.Category, text)
	})
}

// FindByCategory returns the events whose category contains text, ignoring
// ASCII case.
func (s *Schedule) FindByCategory(text string) []event.Event {
	text = event.Normalize(text)
	return s.filter(func(e event.Event) bool {
		return event.ContainsFold(e.Category, text)
	})
}

func (s *Schedule) filter(keep func(event.Event) bool) []event.Event {
	out := make([]event.Event, 0)
	for _, e := range s.events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// SortByDateTime orders events by date then time, keeping the prior
// relative order of events at the same minute.
func (s *Schedule) SortByDateTime() {
	slices.SortStableFunc(s.events, event.CompareDateTime)
}

// SortByPriority orders events most urgent first, keeping the prior relative
// order of events with equal priority.
func (s *Schedule) SortByPriority() {
	slices.SortStableFunc(s.events, event.ComparePriority)
}

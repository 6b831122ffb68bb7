package schedule

import (
	"slices"

	"github.com/roach88/planner/internal/event"
)

// Stats summarizes a schedule relative to a reference day.
type Stats struct {
	Total            int          `json:"total"`
	Today            int          `json:"today"`
	ThisMonth        int          `json:"this_month"`
	UniqueCategories int          `json:"unique_categories"`
	ByPriority       [5]int       `json:"by_priority"`
	NextUpcoming     *event.Event `json:"next_upcoming,omitempty"`
}

// PriorityCount returns the number of events with priority p.
func (st Stats) PriorityCount(p int) int {
	if !event.ValidPriority(p) {
		return 0
	}
	return st.ByPriority[p-1]
}

// PriorityShare returns the percentage of events with priority p.
func (st Stats) PriorityShare(p int) float64 {
	if st.Total == 0 {
		return 0
	}
	return float64(st.PriorityCount(p)) / float64(st.Total) * 100
}

// Statistics computes Stats against today. Empty categories are not counted
// as a category. NextUpcoming is the earliest event dated today or later.
//
// The search for NextUpcoming sorts a copy; the schedule's internal order is
// not changed.
func (s *Schedule) Statistics(today event.Date) Stats {
	st := Stats{Total: len(s.events)}
	categories := make(map[string]struct{})

	for _, e := range s.events {
		if event.ValidPriority(e.Priority) {
			st.ByPriority[e.Priority-1]++
		}
		if e.Date == today {
			st.Today++
		}
		if e.Date.SameMonth(today) {
			st.ThisMonth++
		}
		if e.Category != "" {
			categories[e.Category] = struct{}{}
		}
	}
	st.UniqueCategories = len(categories)

	sorted := slices.Clone(s.events)
	slices.SortStableFunc(sorted, event.CompareDateTime)
	for _, e := range sorted {
		if e.Date.Compare(today) >= 0 {
			next := e
			st.NextUpcoming = &next
			break
		}
	}
	return st
}

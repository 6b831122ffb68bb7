package schedule

import (
	"errors"
	"slices"

	"github.com/roach88/planner/internal/event"
)

// DefaultCapacity is the maximum number of events a schedule holds unless
// configured lower.
const DefaultCapacity = 500

// Schedule is the bounded collection of events plus its id sequence.
type Schedule struct {
	events   []event.Event
	ids      *IDSequence
	capacity int
}

// New creates an empty schedule. A capacity outside 1..DefaultCapacity
// selects DefaultCapacity.
func New(capacity int) *Schedule {
	if capacity <= 0 || capacity > DefaultCapacity {
		capacity = DefaultCapacity
	}
	return &Schedule{
		events:   make([]event.Event, 0, capacity),
		ids:      NewIDSequence(),
		capacity: capacity,
	}
}

// Len returns the number of events held.
func (s *Schedule) Len() int {
	return len(s.events)
}

// Capacity returns the maximum number of events.
func (s *Schedule) Capacity() int {
	return s.capacity
}

// Full reports whether another Add would fail with CapacityExceeded.
func (s *Schedule) Full() bool {
	return len(s.events) >= s.capacity
}

// NextID returns the id the next successful Add will assign.
func (s *Schedule) NextID() int {
	return s.ids.Peek()
}

// Add validates d, assigns it the next id and appends it.
//
// Returns a CapacityExceeded error when the schedule is full and an
// InvalidValue error when d fails validation. No id is consumed on failure.
func (s *Schedule) Add(d event.Draft) (int, error) {
	if s.Full() {
		return 0, event.NewCapacityExceeded(s.capacity)
	}
	d = d.Normalized()
	if err := d.Validate(); err != nil {
		return 0, err
	}
	id := s.ids.Next()
	s.events = append(s.events, event.FromDraft(id, d))
	return id, nil
}

// AddAll adds every draft or none of them.
func (s *Schedule) AddAll(drafts []event.Draft) ([]int, error) {
	if len(s.events)+len(drafts) > s.capacity {
		return nil, event.NewCapacityExceeded(s.capacity)
	}
	normalized := make([]event.Draft, len(drafts))
	for i, d := range drafts {
		d = d.Normalized()
		if err := d.Validate(); err != nil {
			return nil, err
		}
		normalized[i] = d
	}

	ids := make([]int, len(normalized))
	for i, d := range normalized {
		ids[i] = s.ids.Next()
		s.events = append(s.events, event.FromDraft(ids[i], d))
	}
	return ids, nil
}

// Get returns a copy of the event with the given id.
func (s *Schedule) Get(id int) (event.Event, error) {
	i := s.indexOf(id)
	if i < 0 {
		return event.Event{}, event.NewNotFound(id)
	}
	return s.events[i], nil
}

// Delete removes the event with the given id and returns it. The remaining
// events keep their relative order.
func (s *Schedule) Delete(id int) (event.Event, error) {
	i := s.indexOf(id)
	if i < 0 {
		return event.Event{}, event.NewNotFound(id)
	}
	removed := s.events[i]
	s.events = slices.Delete(s.events, i, i+1)
	return removed, nil
}

// Edit applies m to the event with the given id. The new value is validated
// first; on failure the event is left unchanged.
func (s *Schedule) Edit(id int, m Mutation) error {
	i := s.indexOf(id)
	if i < 0 {
		return event.NewNotFound(id)
	}
	updated, err := m.apply(s.events[i])
	if err != nil {
		var de *event.Error
		if errors.As(err, &de) {
			de.ID = id
		}
		return err
	}
	s.events[i] = updated
	return nil
}

// indexOf returns the position of id, or -1.
func (s *Schedule) indexOf(id int) int {
	return slices.IndexFunc(s.events, func(e event.Event) bool {
		return e.ID == id
	})
}

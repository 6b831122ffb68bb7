package schedule

import (
	"fmt"

	"github.com/roach88/planner/internal/event"
)

// Field names the single event field a Mutation changes.
type Field string

const (
	FieldDate        Field = "date"
	FieldTime        Field = "time"
	FieldDescription Field = "description"
	FieldPriority    Field = "priority"
	FieldCategory    Field = "category"
)

// Mutation is a single-field change to an event. Build one with SetDate,
// SetTime, SetDescription, SetPriority or SetCategory.
type Mutation struct {
	field    Field
	date     event.Date
	time     event.TimeOfDay
	text     string
	priority int
}

// SetDate changes the event date.
func SetDate(d event.Date) Mutation {
	return Mutation{field: FieldDate, date: d}
}

// SetTime changes the event time.
func SetTime(t event.TimeOfDay) Mutation {
	return Mutation{field: FieldTime, time: t}
}

// SetDescription changes the event description.
func SetDescription(text string) Mutation {
	return Mutation{field: FieldDescription, text: text}
}

// SetPriority changes the event priority.
func SetPriority(p int) Mutation {
	return Mutation{field: FieldPriority, priority: p}
}

// SetCategory changes the event category.
func SetCategory(text string) Mutation {
	return Mutation{field: FieldCategory, text: text}
}

// Field returns the field m changes.
func (m Mutation) Field() Field {
	return m.field
}

// apply returns e with m applied, or an InvalidValue error.
func (m Mutation) apply(e event.Event) (event.Event, error) {
	switch m.field {
	case FieldDate:
		if !m.date.Valid() {
			return e, event.NewInvalidValue(string(m.field), fmt.Sprintf("invalid date %s", m.date))
		}
		e.Date = m.date
	case FieldTime:
		if !m.time.Valid() {
			return e, event.NewInvalidValue(string(m.field), fmt.Sprintf("invalid time %s", m.time))
		}
		e.Time = m.time
	case FieldDescription:
		text := event.Normalize(m.text)
		if err := event.ValidateDescription(text); err != nil {
			return e, err
		}
		e.Description = text
	case FieldPriority:
		if !event.ValidPriority(m.priority) {
			return e, event.NewInvalidValue(string(m.field), fmt.Sprintf("priority %d outside %d-%d", m.priority, event.MinPriority, event.MaxPriority))
		}
		e.Priority = m.priority
	case FieldCategory:
		text := event.Normalize(m.text)
		if err := event.ValidateCategory(text); err != nil {
			return e, err
		}
		e.Category = text
	default:
		return e, event.NewInvalidValue(string(m.field), "unknown field")
	}
	return e, nil
}

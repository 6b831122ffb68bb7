package event

import (
	"cmp"
	"fmt"
	"time"
)

// Field bounds, in bytes after normalization.
const (
	MaxDescriptionLen = 199
	MaxCategoryLen    = 49

	MinYear = 2000
	MaxYear = 2100

	MinPriority = 1
	MaxPriority = 5
)

// Date is a calendar day. The zero value is not a valid date.
type Date struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Day: d, Month: int(m), Year: y}
}

// Valid reports whether d is a real date within the supported year range.
func (d Date) Valid() bool {
	return ValidDate(d.Day, d.Month, d.Year)
}

// Compare orders dates chronologically.
func (d Date) Compare(o Date) int {
	if c := cmp.Compare(d.Year, o.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.Month, o.Month); c != 0 {
		return c
	}
	return cmp.Compare(d.Day, o.Day)
}

// SameMonth reports whether d and o fall in the same month of the same year.
func (d Date) SameMonth(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month
}

// String formats the date as DD/MM/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// In returns the instant at hour:minute on d in loc.
func (d Date) In(tod TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, tod.Hour, tod.Minute, 0, 0, loc)
}

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Valid reports whether t is within 00:00 through 23:59.
func (t TimeOfDay) Valid() bool {
	return ValidTime(t.Hour, t.Minute)
}

// Compare orders times of day chronologically.
func (t TimeOfDay) Compare(o TimeOfDay) int {
	if c := cmp.Compare(t.Hour, o.Hour); c != 0 {
		return c
	}
	return cmp.Compare(t.Minute, o.Minute)
}

// String formats the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Draft holds the fields of an event that has not been assigned an id yet.
type Draft struct {
	Date        Date      `json:"date"`
	Time        TimeOfDay `json:"time"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
	Category    string    `json:"category"`
}

// Normalized returns a copy of d with its free text NFC-normalized.
func (d Draft) Normalized() Draft {
	d.Description = Normalize(d.Description)
	d.Category = Normalize(d.Category)
	return d
}

// Validate checks every field of d. The returned error, if any, is an
// InvalidValue *Error naming the first offending field.
func (d Draft) Validate() error {
	if !d.Date.Valid() {
		return NewInvalidValue("date", fmt.Sprintf("invalid date %s", d.Date))
	}
	if !d.Time.Valid() {
		return NewInvalidValue("time", fmt.Sprintf("invalid time %s", d.Time))
	}
	if !ValidPriority(d.Priority) {
		return NewInvalidValue("priority", fmt.Sprintf("priority %d outside %d-%d", d.Priority, MinPriority, MaxPriority))
	}
	if err := ValidateDescription(d.Description); err != nil {
		return err
	}
	return ValidateCategory(d.Category)
}

// Event is one scheduled item held by the store.
type Event struct {
	ID          int       `json:"id"`
	Date        Date      `json:"date"`
	Time        TimeOfDay `json:"time"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
	Category    string    `json:"category"`
}

// FromDraft binds d to id.
func FromDraft(id int, d Draft) Event {
	return Event{
		ID:          id,
		Date:        d.Date,
		Time:        d.Time,
		Description: d.Description,
		Priority:    d.Priority,
		Category:    d.Category,
	}
}

// Draft returns the id-less fields of e.
func (e Event) Draft() Draft {
	return Draft{
		Date:        e.Date,
		Time:        e.Time,
		Description: e.Description,
		Priority:    e.Priority,
		Category:    e.Category,
	}
}

// Validate checks the fields of e; the id is not inspected.
func (e Event) Validate() error {
	return e.Draft().Validate()
}

// CompareDateTime orders events by (year, month, day, hour, minute).
// Events at the same minute compare equal.
func CompareDateTime(a, b Event) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return a.Time.Compare(b.Time)
}

// ComparePriority orders events by priority, most urgent first.
func ComparePriority(a, b Event) int {
	return cmp.Compare(a.Priority, b.Priority)
}

package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/planner/internal/event"
)

// Delimiter separates the fields of a record line.
const Delimiter = "|"

// recordFields is the number of delimited fields in a record line.
const recordFields = 9

var intFields = [...]string{"id", "day", "month", "year", "hour", "minute", "priority"}

// FormatRecord renders e as a clear-text record line, newline included.
func FormatRecord(e event.Event) []byte {
	return fmt.Appendf(nil, "%d|%d|%d|%d|%d|%d|%d|%s|%s\n",
		e.ID, e.Date.Day, e.Date.Month, e.Date.Year,
		e.Time.Hour, e.Time.Minute, e.Priority,
		e.Category, e.Description)
}

// ParseRecord parses a clear-text record line without its trailing newline.
//
// The description is the last field, so it may itself contain the delimiter.
// Any other deviation from the expected shape, or an event that fails
// validation, yields a MalformedRecord error.
func ParseRecord(line string) (event.Event, error) {
	parts := strings.SplitN(line, Delimiter, recordFields)
	if len(parts) != recordFields {
		return event.Event{}, event.NewMalformedRecord(
			fmt.Sprintf("expected %d fields, got %d", recordFields, len(parts)), nil)
	}

	var nums [len(intFields)]int
	for i, name := range intFields {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return event.Event{}, event.NewMalformedRecord(fmt.Sprintf("field %s is not an integer", name), err)
		}
		nums[i] = n
	}

	e := event.Event{
		ID:          nums[0],
		Date:        event.Date{Day: nums[1], Month: nums[2], Year: nums[3]},
		Time:        event.TimeOfDay{Hour: nums[4], Minute: nums[5]},
		Priority:    nums[6],
		Category:    parts[7],
		Description: parts[8],
	}
	if e.ID < 1 {
		return event.Event{}, event.NewMalformedRecord(fmt.Sprintf("id %d is not positive", e.ID), nil)
	}
	if err := e.Validate(); err != nil {
		return event.Event{}, event.NewMalformedRecord("record holds an invalid event", err)
	}
	return e, nil
}

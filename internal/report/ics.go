package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/emersion/go-ical"

	"github.com/roach88/planner/internal/event"
)

// ProductID identifies the planner in exported calendars.
const ProductID = "-//roach88//planner//EN"

// EventUID returns the stable iCalendar UID for an event id.
func EventUID(id int) string {
	return fmt.Sprintf("event-%d@planner", id)
}

// ICalPriority maps priority 1..5 onto the iCalendar 1..9 scale.
func ICalPriority(p int) int {
	return 2*p - 1
}

// WriteICS writes events as an iCalendar document. Start times are
// interpreted in loc; stamp becomes every event's DTSTAMP.
func WriteICS(w io.Writer, events []event.Event, stamp time.Time, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	for _, e := range events {
		cal.Children = append(cal.Children, toVEvent(e, stamp, loc))
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}

func toVEvent(e event.Event, stamp time.Time, loc *time.Location) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, EventUID(e.ID))
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, e.Date.In(e.Time, loc))
	ve.Props.SetText(ical.PropSummary, e.Description)
	if e.Description != "" {
		ve.Props.SetText(ical.PropDescription, e.Description)
	}
	if e.Category != "" {
		ve.Props.SetText(ical.PropCategories, e.Category)
	}

	prio := ical.NewProp(ical.PropPriority)
	prio.Value = strconv.Itoa(ICalPriority(e.Priority))
	ve.Props.Set(prio)
	return ve
}

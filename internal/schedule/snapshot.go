package schedule

import (
	"slices"

	"github.com/roach88/planner/internal/event"
)

// Snapshot is a detached copy of a schedule's contents, the unit the codec
// reads and writes.
type Snapshot struct {
	Events []event.Event
	NextID int
}

// Snapshot copies out the events, in internal order, and the next id.
func (s *Schedule) Snapshot() Snapshot {
	return Snapshot{
		Events: slices.Clone(s.events),
		NextID: s.ids.Peek(),
	}
}

// RestoreResult reports what Restore did with a snapshot.
type RestoreResult struct {
	Restored   int
	Duplicates []int // ids dropped because an earlier event already held them
	Invalid    []int // ids dropped because the event failed validation
	Overflow   int   // events dropped because capacity was reached
}

// Restore replaces the schedule's contents with snap.
//
// Events that fail validation or repeat an earlier id are dropped, as are
// events beyond capacity. The id sequence resumes at the larger of
// snap.NextID and one past the largest restored id.
func (s *Schedule) Restore(snap Snapshot) RestoreResult {
	var res RestoreResult
	seen := make(map[int]struct{}, len(snap.Events))
	events := make([]event.Event, 0, s.capacity)
	maxID := 0

	for _, e := range snap.Events {
		if e.ID < 1 || e.Validate() != nil {
			res.Invalid = append(res.Invalid, e.ID)
			continue
		}
		if _, dup := seen[e.ID]; dup {
			res.Duplicates = append(res.Duplicates, e.ID)
			continue
		}
		if len(events) >= s.capacity {
			res.Overflow++
			continue
		}
		seen[e.ID] = struct{}{}
		events = append(events, e)
		maxID = max(maxID, e.ID)
	}

	s.events = events
	s.ids = NewIDSequenceAt(snap.NextID)
	s.ids.AtLeast(maxID + 1)
	res.Restored = len(events)
	return res
}

package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/planner/internal/event"
)

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	src := seeded(t)
	_, err := src.Delete(3)
	require.NoError(t, err)

	snap := src.Snapshot()
	dst := New(0)
	res := dst.Restore(snap)

	assert.Equal(t, 4, res.Restored)
	assert.Equal(t, src.List(), dst.List())
	assert.Equal(t, src.NextID(), dst.NextID())
}

func TestRestore_DropsDuplicatesAndInvalid(t *testing.T) {
	valid := event.FromDraft(1, draft(1, 1, 2030, 0, 0, "a", 1, ""))
	dup := event.FromDraft(1, draft(2, 1, 2030, 0, 0, "b", 1, ""))
	invalid := event.FromDraft(2, draft(1, 1, 2030, 0, 0, "c", 7, ""))
	other := event.FromDraft(9, draft(3, 1, 2030, 0, 0, "d", 1, ""))

	s := New(0)
	res := s.Restore(Snapshot{Events: []event.Event{valid, dup, invalid, other}, NextID: 3})

	assert.Equal(t, 2, res.Restored)
	assert.Equal(t, []int{1}, res.Duplicates)
	assert.Equal(t, []int{2}, res.Invalid)
	assert.Equal(t, []int{1, 9}, ids(s.List()))
	assert.Equal(t, 10, s.NextID(), "next id is raised above the largest restored id")
}

func TestRestore_RespectsCapacity(t *testing.T) {
	events := []event.Event{
		event.FromDraft(1, draft(1, 1, 2030, 0, 0, "a", 1, "")),
		event.FromDraft(2, draft(1, 1, 2030, 0, 0, "b", 1, "")),
		event.FromDraft(3, draft(1, 1, 2030, 0, 0, "c", 1, "")),
	}
	s := New(2)
	res := s.Restore(Snapshot{Events: events, NextID: 4})

	assert.Equal(t, 2, res.Restored)
	assert.Equal(t, 1, res.Overflow)
	assert.Equal(t, 4, s.NextID())
}

func TestIDSequence(t *testing.T) {
	seq := NewIDSequence()
	assert.Equal(t, 1, seq.Next())
	assert.Equal(t, 2, seq.Next())
	assert.Equal(t, 3, seq.Peek())

	seq.AtLeast(2)
	assert.Equal(t, 3, seq.Peek(), "AtLeast never lowers")
	seq.AtLeast(10)
	assert.Equal(t, 10, seq.Next())

	assert.Equal(t, 1, NewIDSequenceAt(0).Peek())
	assert.Equal(t, 42, NewIDSequenceAt(42).Peek())
}

package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/planner/internal/event"
)

func draft(day, month, year, hour, minute int, desc string, priority int, category string) event.Draft {
	return event.Draft{
		Date:        event.Date{Day: day, Month: month, Year: year},
		Time:        event.TimeOfDay{Hour: hour, Minute: minute},
		Description: desc,
		Priority:    priority,
		Category:    category,
	}
}

func ids(events []event.Event) []int {
	out := make([]int, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestAdd_AssignsSequentialIDs(t *testing.T) {
	s := New(0)

	id1, err := s.Add(draft(15, 6, 2025, 9, 0, "Standup", 2, "Work"))
	require.NoError(t, err)
	id2, err := s.Add(draft(16, 6, 2025, 10, 0, "Review", 3, "Work"))
	require.NoError(t, err)

	assert.Equal(t, 1, id1)
	assert.Equal(t, 2, id2)
	assert.Equal(t, 3, s.NextID())
	assert.Equal(t, 2, s.Len())
}

func TestAdd_InvalidDraftConsumesNoID(t *testing.T) {
	s := New(0)

	_, err := s.Add(draft(31, 4, 2025, 9, 0, "bad", 2, ""))
	require.Error(t, err)
	assert.True(t, event.IsInvalidValue(err))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, s.NextID(), "failed add must not consume an id")

	id, err := s.Add(draft(30, 4, 2025, 9, 0, "good", 2, ""))
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestAdd_CapacityExceeded(t *testing.T) {
	s := New(DefaultCapacity)
	for i := 0; i < DefaultCapacity; i++ {
		_, err := s.Add(draft(1, 1, 2030, 0, 0, fmt.Sprintf("event %d", i), 3, ""))
		require.NoError(t, err)
	}

	_, err := s.Add(draft(1, 1, 2030, 0, 0, "one too many", 3, ""))
	require.Error(t, err)
	assert.True(t, event.IsCapacityExceeded(err))
	assert.Equal(t, DefaultCapacity, s.Len())
	assert.Equal(t, DefaultCapacity+1, s.NextID())
}

func TestNew_CapacityBounds(t *testing.T) {
	assert.Equal(t, DefaultCapacity, New(0).Capacity())
	assert.Equal(t, DefaultCapacity, New(-3).Capacity())
	assert.Equal(t, DefaultCapacity, New(10000).Capacity())
	assert.Equal(t, 10, New(10).Capacity())
}

func TestAddAll_AllOrNothing(t *testing.T) {
	s := New(3)
	_, err := s.Add(draft(1, 1, 2030, 0, 0, "first", 1, ""))
	require.NoError(t, err)

	_, err = s.AddAll([]event.Draft{
		draft(2, 1, 2030, 0, 0, "a", 1, ""),
		draft(3, 1, 2030, 0, 0, "b", 1, ""),
		draft(4, 1, 2030, 0, 0, "c", 1, ""),
	})
	require.Error(t, err)
	assert.True(t, event.IsCapacityExceeded(err))
	assert.Equal(t, 1, s.Len())

	_, err = s.AddAll([]event.Draft{
		draft(2, 1, 2030, 0, 0, "a", 1, ""),
		draft(2, 1, 2030, 0, 0, "b", 9, ""),
	})
	require.Error(t, err)
	assert.True(t, event.IsInvalidValue(err))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, s.NextID())

	got, err := s.AddAll([]event.Draft{
		draft(2, 1, 2030, 0, 0, "a", 1, ""),
		draft(3, 1, 2030, 0, 0, "b", 1, ""),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, got)
}

func TestDelete_PreservesOrder(t *testing.T) {
	s := New(0)
	for i := 1; i <= 4; i++ {
		_, err := s.Add(draft(i, 1, 2030, 0, 0, fmt.Sprintf("e%d", i), 3, ""))
		require.NoError(t, err)
	}
	s.SortByPriority() // no-op on equal priorities, exercises stability

	removed, err := s.Delete(2)
	require.NoError(t, err)
	assert.Equal(t, 2, removed.ID)
	assert.Equal(t, "e2", removed.Description)
	assert.Equal(t, []int{1, 3, 4}, ids(s.List()))
}

func TestDelete_NotFoundLeavesStoreUnchanged(t *testing.T) {
	s := New(0)
	_, err := s.Add(draft(1, 1, 2030, 0, 0, "keep", 3, ""))
	require.NoError(t, err)
	before := s.List()

	_, err = s.Delete(99)
	require.Error(t, err)
	assert.True(t, event.IsNotFound(err))
	assert.Equal(t, before, s.List())
	assert.Equal(t, 1, s.Len())
}

func TestDelete_IDsNotReused(t *testing.T) {
	s := New(0)
	id, err := s.Add(draft(1, 1, 2030, 0, 0, "x", 3, ""))
	require.NoError(t, err)
	_, err = s.Delete(id)
	require.NoError(t, err)

	next, err := s.Add(draft(1, 1, 2030, 0, 0, "y", 3, ""))
	require.NoError(t, err)
	assert.Equal(t, 2, next)
}

func TestEdit(t *testing.T) {
	s := New(0)
	id, err := s.Add(draft(15, 6, 2025, 9, 0, "Standup", 2, "Work"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		m     Mutation
		check func(t *testing.T, e event.Event)
	}{
		{"date", SetDate(event.Date{Day: 29, Month: 2, Year: 2028}), func(t *testing.T, e event.Event) {
			assert.Equal(t, event.Date{Day: 29, Month: 2, Year: 2028}, e.Date)
		}},
		{"time", SetTime(event.TimeOfDay{Hour: 17, Minute: 45}), func(t *testing.T, e event.Event) {
			assert.Equal(t, event.TimeOfDay{Hour: 17, Minute: 45}, e.Time)
		}},
		{"description", SetDescription("Retro"), func(t *testing.T, e event.Event) {
			assert.Equal(t, "Retro", e.Description)
		}},
		{"priority", SetPriority(5), func(t *testing.T, e event.Event) {
			assert.Equal(t, 5, e.Priority)
		}},
		{"category", SetCategory("Team"), func(t *testing.T, e event.Event) {
			assert.Equal(t, "Team", e.Category)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, s.Edit(id, tt.m))
			e, err := s.Get(id)
			require.NoError(t, err)
			tt.check(t, e)
			assert.Equal(t, id, e.ID)
		})
	}
}

func TestEdit_InvalidValueLeavesEventUnchanged(t *testing.T) {
	s := New(0)
	id, err := s.Add(draft(15, 6, 2025, 9, 0, "Standup", 2, "Work"))
	require.NoError(t, err)
	before, err := s.Get(id)
	require.NoError(t, err)

	for _, m := range []Mutation{
		SetDate(event.Date{Day: 29, Month: 2, Year: 2100}),
		SetTime(event.TimeOfDay{Hour: 23, Minute: 60}),
		SetPriority(6),
		SetCategory("a|b"),
		SetDescription("two\nlines"),
	} {
		t.Run(string(m.Field()), func(t *testing.T) {
			err := s.Edit(id, m)
			require.Error(t, err)
			assert.True(t, event.IsInvalidValue(err))

			var de *event.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, id, de.ID)

			after, err := s.Get(id)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestEdit_NotFound(t *testing.T) {
	s := New(0)
	err := s.Edit(7, SetPriority(1))
	require.Error(t, err)
	assert.True(t, event.IsNotFound(err))
}

func TestStandupScenario(t *testing.T) {
	s := New(0)

	id, err := s.Add(draft(15, 6, 2025, 9, 0, "Standup", 2, "Work"))
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	found := s.FindByKeyword("stand")
	require.Len(t, found, 1)
	assert.Equal(t, 1, found[0].ID)

	_, err = s.Delete(1)
	require.NoError(t, err)
	assert.Empty(t, s.FindByKeyword("stand"))
}

func TestList_ReturnsCopy(t *testing.T) {
	s := New(0)
	_, err := s.Add(draft(1, 1, 2030, 0, 0, "original", 3, ""))
	require.NoError(t, err)

	list := s.List()
	list[0].Description = "mutated"

	e, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "original", e.Description)
}

package event

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateCompare(t *testing.T) {
	a := Date{Day: 31, Month: 12, Year: 2024}
	b := Date{Day: 1, Month: 1, Year: 2025}
	c := Date{Day: 2, Month: 1, Year: 2025}

	assert.Negative(t, a.Compare(b))
	assert.Negative(t, b.Compare(c))
	assert.Positive(t, c.Compare(a))
	assert.Zero(t, b.Compare(b))
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	ts := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC).In(loc)

	assert.Equal(t, Date{Day: 16, Month: 6, Year: 2025}, DateOf(ts))
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "05/03/2025", Date{Day: 5, Month: 3, Year: 2025}.String())
	assert.Equal(t, "09:05", TimeOfDay{Hour: 9, Minute: 5}.String())
}

func TestCompareDateTime(t *testing.T) {
	base := Event{Date: Date{Day: 1, Month: 1, Year: 2025}, Time: TimeOfDay{Hour: 9}}
	later := base
	later.Time.Minute = 1
	nextDay := base
	nextDay.Date.Day = 2
	nextDay.Time.Hour = 0

	assert.Negative(t, CompareDateTime(base, later))
	assert.Negative(t, CompareDateTime(later, nextDay))
	assert.Zero(t, CompareDateTime(base, base))
}

func TestFromDraftRoundTrip(t *testing.T) {
	d := Draft{
		Date:        Date{Day: 15, Month: 6, Year: 2025},
		Time:        TimeOfDay{Hour: 9},
		Description: "Standup",
		Priority:    2,
		Category:    "Work",
	}
	e := FromDraft(7, d)

	assert.Equal(t, 7, e.ID)
	assert.Equal(t, d, e.Draft())
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Daily Standup", "stand"))
	assert.True(t, ContainsFold("Daily Standup", "DAILY"))
	assert.True(t, ContainsFold("anything", ""))
	assert.False(t, ContainsFold("Work", "home"))
	assert.False(t, ContainsFold("ab", "abc"))

	// Folding is ASCII only: non-ASCII letters must match exactly.
	assert.True(t, ContainsFold("Café", "café"))
	assert.False(t, ContainsFold("CAFÉ", "café"))
}

func TestNormalize(t *testing.T) {
	decomposed := "Cafe\u0301"
	assert.Equal(t, "Café", Normalize(decomposed))
	assert.Equal(t, "plain ascii", Normalize("plain ascii"))

	d := Draft{Description: decomposed, Category: decomposed}.Normalized()
	assert.Equal(t, "Café", d.Description)
	assert.Equal(t, "Café", d.Category)
}

func TestErrorPredicates(t *testing.T) {
	nf := NewNotFound(42)
	wrapped := fmt.Errorf("delete: %w", nf)

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsCapacityExceeded(wrapped))
	assert.Contains(t, nf.Error(), "NOT_FOUND")
	assert.Contains(t, nf.Error(), "id=42")

	assert.True(t, IsCapacityExceeded(NewCapacityExceeded(500)))
	assert.True(t, IsInvalidValue(NewInvalidValue("date", "bad")))

	cause := errors.New("permission denied")
	ioErr := NewIO("open schedule.dat", cause)
	assert.True(t, IsIO(ioErr))
	assert.ErrorIs(t, ioErr, cause)

	assert.True(t, IsMalformedRecord(NewMalformedRecord("expected 9 fields", nil)))
	assert.False(t, IsNotFound(errors.New("plain")))
}

package codec

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/planner/internal/event"
	"github.com/roach88/planner/internal/schedule"
)

func goldenSnapshot() schedule.Snapshot {
	return schedule.Snapshot{
		Events: []event.Event{
			{
				ID:          1,
				Date:        event.Date{Day: 15, Month: 6, Year: 2025},
				Time:        event.TimeOfDay{Hour: 9, Minute: 0},
				Description: "Standup",
				Priority:    2,
				Category:    "Work",
			},
			{
				ID:          3,
				Date:        event.Date{Day: 29, Month: 2, Year: 2028},
				Time:        event.TimeOfDay{Hour: 18, Minute: 30},
				Description: "Dinner | with friends",
				Priority:    1,
			},
		},
		NextID: 4,
	}
}

func obfuscated(line string) []byte {
	b := []byte(line)
	Obfuscate(b)
	return b
}

func TestEncode_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, goldenSnapshot()))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "schedule", buf.Bytes())
}

func TestEncode_HeaderIsClearText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, goldenSnapshot()))

	header, _, ok := bytes.Cut(buf.Bytes(), []byte("\n"))
	require.True(t, ok)
	assert.Equal(t, "2 4", string(header))
}

func TestEncode_RejectsDelimiterInCategory(t *testing.T) {
	snap := goldenSnapshot()
	snap.Events[0].Category = "a|b"

	err := Encode(&bytes.Buffer{}, snap)
	require.Error(t, err)
	assert.True(t, event.IsInvalidValue(err))
}

func TestDecode_RoundTrip(t *testing.T) {
	want := goldenSnapshot()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, want))

	got, rep, err := Decode(&buf, schedule.DefaultCapacity)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 2, rep.Declared)
	assert.Equal(t, 2, rep.Loaded)
	assert.Empty(t, rep.Skipped)
}

// Record 3 starts with '3', which obfuscates to a raw newline byte. The
// decoder must not treat it as a record boundary.
func TestDecode_ObfuscatedNewlineByte(t *testing.T) {
	assert.Equal(t, byte('\n'), obfuscated("3")[0])

	s := schedule.New(0)
	for i := 0; i < 40; i++ {
		_, err := s.Add(event.Draft{
			Date:        event.Date{Day: 1 + i%28, Month: 1 + i%12, Year: 2030},
			Time:        event.TimeOfDay{Hour: i % 24, Minute: i},
			Description: fmt.Sprintf("event %d with 3s 33 333", i),
			Priority:    1 + i%5,
			Category:    "cat3",
		})
		require.NoError(t, err)
	}
	want := s.Snapshot()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, want))
	got, rep, err := Decode(&buf, schedule.DefaultCapacity)
	require.NoError(t, err)
	assert.Empty(t, rep.Skipped)
	assert.Equal(t, want, got)
}

func TestDecode_Full500RoundTrip(t *testing.T) {
	s := schedule.New(schedule.DefaultCapacity)
	for i := 0; i < schedule.DefaultCapacity; i++ {
		_, err := s.Add(event.Draft{
			Date:        event.Date{Day: 28, Month: 2, Year: 2000 + i%101},
			Time:        event.TimeOfDay{Hour: 23, Minute: 59},
			Description: strings.Repeat("x", i%200),
			Priority:    5,
			Category:    strings.Repeat("y", i%50),
		})
		require.NoError(t, err)
	}
	_, err := s.Delete(250)
	require.NoError(t, err)
	s.SortByDateTime()
	want := s.Snapshot()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, want))
	got, _, err := Decode(&buf, schedule.DefaultCapacity)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	restored := schedule.New(0)
	restored.Restore(got)
	assert.Equal(t, s.List(), restored.List())
	assert.Equal(t, s.NextID(), restored.NextID())
}

func TestDecode_SkipsMalformedRecords(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("5 9\n")
	buf.Write(obfuscated("1|15|6|2025|9|0|2|Work|Standup\n"))
	buf.Write(obfuscated("not a record\n"))
	buf.Write(obfuscated("2|16|6|2025|10|0|3|Work|Review\n"))
	buf.Write(obfuscated("3|31|4|2025|10|0|3|Work|April 31st\n"))
	buf.Write(obfuscated("4|17|6|2025|11|0|1||Lunch\n"))

	snap, rep, err := Decode(&buf, schedule.DefaultCapacity)
	require.NoError(t, err)

	assert.Equal(t, 5, rep.Declared)
	assert.Equal(t, 3, rep.Loaded)
	require.Len(t, rep.Skipped, 2)
	assert.Equal(t, 1, rep.Skipped[0].Index)
	assert.Equal(t, 3, rep.Skipped[1].Index)
	assert.True(t, event.IsMalformedRecord(rep.Skipped[0].Err))

	require.Len(t, snap.Events, 3)
	assert.Equal(t, []int{1, 2, 4}, []int{snap.Events[0].ID, snap.Events[1].ID, snap.Events[2].ID})
	assert.Equal(t, 9, snap.NextID)
}

func TestDecode_FewerRecordsThanDeclared(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("5 4\n")
	buf.Write(obfuscated("1|15|6|2025|9|0|2|Work|Standup\n"))
	buf.Write(obfuscated("2|16|6|2025|10|0|3|Work|Review\n"))
	buf.Write(obfuscated("3|17|6|2025|11|0|1||Lunch\n"))

	snap, rep, err := Decode(&buf, schedule.DefaultCapacity)
	require.NoError(t, err)
	assert.Equal(t, 5, rep.Declared)
	assert.Equal(t, 3, rep.Loaded)
	assert.Len(t, snap.Events, 3)
}

func TestDecode_IgnoresRecordsBeyondDeclaredCount(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("1 3\n")
	buf.Write(obfuscated("1|15|6|2025|9|0|2|Work|Standup\n"))
	buf.Write(obfuscated("2|16|6|2025|10|0|3|Work|Review\n"))

	snap, _, err := Decode(&buf, schedule.DefaultCapacity)
	require.NoError(t, err)
	require.Len(t, snap.Events, 1)
	assert.Equal(t, 1, snap.Events[0].ID)
}

func TestDecode_UnterminatedFinalRecord(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("1 2\n")
	buf.Write(obfuscated("1|15|6|2025|9|0|2|Work|Standup"))

	snap, rep, err := Decode(&buf, schedule.DefaultCapacity)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Loaded)
	assert.Equal(t, "Standup", snap.Events[0].Description)
}

func TestDecode_TooManyEvents(t *testing.T) {
	snap, rep, err := Decode(strings.NewReader("501 1\n"), schedule.DefaultCapacity)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooManyEvents))
	assert.Empty(t, snap.Events)
	assert.Equal(t, 501, rep.Declared)

	_, _, err = Decode(strings.NewReader("11 1\n"), 10)
	assert.ErrorIs(t, err, ErrTooManyEvents)
}

func TestDecode_MalformedHeader(t *testing.T) {
	for _, in := range []string{"", "\n", "3\n", "a b\n", "1 x\n", "-1 2\n", "1 2 3\n"} {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			_, _, err := Decode(strings.NewReader(in), schedule.DefaultCapacity)
			assert.ErrorIs(t, err, ErrMalformedHeader)
		})
	}
}

func TestDecode_EmptySchedule(t *testing.T) {
	snap, rep, err := Decode(strings.NewReader("0 1\n"), schedule.DefaultCapacity)
	require.NoError(t, err)
	assert.Empty(t, snap.Events)
	assert.Equal(t, 1, snap.NextID)
	assert.Equal(t, 0, rep.Loaded)
}

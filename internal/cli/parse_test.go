package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/planner/internal/event"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    event.Date
		wantErr bool
	}{
		{"15/06/2025", event.Date{Day: 15, Month: 6, Year: 2025}, false},
		{"15 06 2025", event.Date{Day: 15, Month: 6, Year: 2025}, false},
		{" 1-1-2000 ", event.Date{Day: 1, Month: 1, Year: 2000}, false},
		{"29/02/2024", event.Date{Day: 29, Month: 2, Year: 2024}, false},
		{"29/02/2100", event.Date{}, true},
		{"31/04/2025", event.Date{}, true},
		{"01/01/1999", event.Date{}, true},
		{"15/06", event.Date{}, true},
		{"aa/06/2025", event.Date{}, true},
		{"", event.Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, event.IsInvalidValue(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTime(t *testing.T) {
	got, err := parseTime("09:05")
	require.NoError(t, err)
	assert.Equal(t, event.TimeOfDay{Hour: 9, Minute: 5}, got)

	got, err = parseTime("23 59")
	require.NoError(t, err)
	assert.Equal(t, event.TimeOfDay{Hour: 23, Minute: 59}, got)

	for _, bad := range []string{"24:00", "12:60", "12", "noon"} {
		_, err := parseTime(bad)
		assert.Error(t, err, bad)
	}
}

func TestParsePriority(t *testing.T) {
	p, err := parsePriority(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, p)

	for _, bad := range []string{"0", "6", "x"} {
		_, err := parsePriority(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("12")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	for _, bad := range []string{"0", "-1", "abc"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		days    int
	}{
		{name: "same hour", start: "10:00", minutes: 45, want: "10:45"},
		{name: "next hour", start: "10:30", minutes: 45, want: "11:15"},
		{name: "wraps past midnight", start: "23:30", minutes: 90, want: "01:00", days: 1},
		{name: "exactly midnight", start: "23:00", minutes: 60, want: "00:00", days: 1},
		{name: "zero minutes", start: "08:05", minutes: 0, want: "08:05"},
		{name: "negative wraps back", start: "00:15", minutes: -30, want: "23:45", days: -1},
		{name: "several days", start: "12:00", minutes: 3 * 1440, want: "12:00", days: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			_, days, err := tt.start.AddMinutesWithOverflow(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.days, days)
		})
	}
}

func TestTimeString_AddMinutes_Invalid(t *testing.T) {
	_, err := TimeString("25:00").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Format12h(t *testing.T) {
	tests := map[TimeString]string{
		"00:00": "12:00 AM",
		"00:30": "12:30 AM",
		"09:05": "9:05 AM",
		"12:00": "12:00 PM",
		"14:30": "2:30 PM",
		"23:59": "11:59 PM",
	}

	for in, want := range tests {
		assert.Equal(t, want, in.Format12h(), "format %s", in)
	}
}

func TestNewTimeStringFromString(t *testing.T) {
	got, err := NewTimeStringFromString("9:05")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:05"), got)
	assert.NoError(t, got.Validate())

	for _, bad := range []string{"", "10", "10:5", "24:00", "10:60", "ab:cd", "10:00:00"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("00:00").Validate())
	assert.NoError(t, TimeString("23:59").Validate())
	assert.Error(t, TimeString("9:05").Validate())
	assert.Error(t, TimeString("").Validate())
}

func TestTimeString_Parts(t *testing.T) {
	ts := TimeString("16:45")
	assert.Equal(t, 16, ts.Hour())
	assert.Equal(t, 45, ts.Minute())
	assert.Equal(t, -1, TimeString("bad").Hour())
	assert.True(t, TimeString("10:59").IsBefore("11:00"))
	assert.True(t, TimeString("11:00").IsAfter("10:59"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 7, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("07:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

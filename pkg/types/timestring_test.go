package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "plain time", input: "10:00", want: "10:00"},
		{name: "with seconds", input: "10:00:00", want: "10:00"},
		{name: "unpadded hour", input: "9:05", want: "09:05"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute", input: "23:59", want: "23:59"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 15, 9, 5, 44, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(moment))
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("00:00"), FromMinutes(0))
	assert.Equal(t, TimeString("10:30"), FromMinutes(630))
	assert.Equal(t, TimeString("23:59"), FromMinutes(1439))
	// Значения за пределами суток заворачиваются
	assert.Equal(t, TimeString("01:00"), FromMinutes(25*60))
	assert.Equal(t, TimeString("23:00"), FromMinutes(-60))
}

func TestMinutesFromMidnight(t *testing.T) {
	m, err := TimeString("10:30").MinutesFromMidnight()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	_, err = TimeString("bad").MinutesFromMidnight()
	assert.Error(t, err)
}

func TestAddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:00"), got)

	// Переход через полночь заворачивается, а не падает
	got, err = TimeString("23:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("01:00"), got)
}

func TestFormat12Hour(t *testing.T) {
	tests := []struct {
		input TimeString
		want  string
	}{
		{"00:30", "12:30 AM"},
		{"01:00", "1:00 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"13:05", "1:05 PM"},
		{"23:00", "11:00 PM"},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Format12Hour())
		})
	}
}

func TestEndTimeString(t *testing.T) {
	assert.Equal(t, "12:00:00", TimeString("10:00").EndTimeString(2))
	assert.Equal(t, "22:00:00", TimeString("21:00").EndTimeString(1))
	// Интервал через полночь заворачивается
	assert.Equal(t, "01:00:00", TimeString("23:00").EndTimeString(2))
}

func TestIsBeforeIsAfter(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("11:00").IsAfter("10:30"))
	assert.False(t, TimeString("10:30").IsAfter("10:30"))
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("9:30")))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 14, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	_, err = TimeString("25:00").Value()
	assert.Error(t, err)
}

package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" format.
// It is stored as text and compared by minutes from midnight, which keeps
// slot arithmetic independent of time zones and calendar dates.
type TimeString string

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString is returned when a value is not a valid "HH:MM" string
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")
)

// NewTimeString creates a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
// A trailing ":SS" component is accepted and dropped.
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(s, ":")
	if len(parts) == 3 {
		s = parts[0] + ":" + parts[1]
	}
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	// Normalize to zero-padded form ("9:00" -> "09:00")
	h, m, _ := ts.parse()
	return FromMinutes(h*60 + m), nil
}

// FromMinutes builds a TimeString from minutes since midnight.
// Values outside a single day wrap around (mod 24h).
func FromMinutes(m int) TimeString {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

func (t TimeString) parse() (hour, minute int, err error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidTimeString
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, ErrInvalidTimeString
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, ErrInvalidTimeString
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidTimeString
	}
	return hour, minute, nil
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (t TimeString) Validate() error {
	_, _, err := t.parse()
	return err
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// Hour returns the hour component (0-23). Invalid values yield 0.
func (t TimeString) Hour() int {
	h, _, _ := t.parse()
	return h
}

// Minute returns the minute component (0-59). Invalid values yield 0.
func (t TimeString) Minute() int {
	_, m, _ := t.parse()
	return m
}

// MinutesFromMidnight returns the value as minutes since 00:00.
func (t TimeString) MinutesFromMidnight() (int, error) {
	h, m, err := t.parse()
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result wraps around midnight; callers that must not cross a day
// boundary are expected to validate the range themselves.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := t.MinutesFromMidnight()
	if err != nil {
		return "", err
	}
	return FromMinutes(m + minutes), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Invalid values compare as 00:00.
func (t TimeString) IsBefore(other TimeString) bool {
	a, _ := t.MinutesFromMidnight()
	b, _ := other.MinutesFromMidnight()
	return a < b
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, _ := t.MinutesFromMidnight()
	b, _ := other.MinutesFromMidnight()
	return a > b
}

// Format12Hour returns the time in 12-hour clock notation with an AM/PM
// suffix, e.g. "00:30" -> "12:30 AM", "13:05" -> "1:05 PM", "12:00" ->
// "12:00 PM". Invalid values are returned unchanged.
func (t TimeString) Format12Hour() string {
	h, m, err := t.parse()
	if err != nil {
		return string(t)
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	display := h
	switch {
	case h == 0:
		display = 12
	case h > 12:
		display = h - 12
	}
	return fmt.Sprintf("%d:%02d %s", display, m, suffix)
}

// EndTimeString returns the end of an interval that starts at t and lasts
// the given number of whole hours, formatted as a 24-hour "HH:MM:00" string
// with seconds zeroed. The arithmetic is pure wall-clock: an interval that
// would cross midnight wraps around instead of failing. Booking validation
// keeps start+duration inside operating hours, so wrapped values never
// reach storage.
func (t TimeString) EndTimeString(durationHours int) string {
	end, err := t.AddMinutes(durationHours * 60)
	if err != nil {
		return string(t) + ":00"
	}
	return string(end) + ":00"
}

// Value implements driver.Valuer for writing to TIME/TEXT columns.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Accepts TEXT ("HH:MM" or "HH:MM:SS"),
// []byte and time.Time column values.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		ts, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = ts
		return nil
	case []byte:
		ts, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = ts
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

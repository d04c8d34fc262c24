package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString is a wall-clock time of day in canonical "HH:MM" (24-hour) form.
// It carries no date and no timezone; callers combine it with a calendar date
// when an absolute instant is needed.
type TimeString string

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat is returned when a value cannot be parsed as HH:MM.
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrTimeOutOfRange is returned when arithmetic would leave the 00:00-23:59 range.
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// NewTimeString extracts the wall-clock portion of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString validates and returns s as a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// MinutesOfDay creates a TimeString from minutes since midnight.
func MinutesOfDay(m int) (TimeString, error) {
	if m < 0 || m >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Validate checks that the value is a well-formed HH:MM time.
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	return hour*60 + minute, nil
}

// Hour returns the hour component (0-23). The value must be valid.
func (t TimeString) Hour() int {
	m, err := t.Minutes()
	if err != nil {
		return 0
	}
	return m / 60
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err1 := t.Minutes()
	b, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err1 := t.Minutes()
	b, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a > b
}

// AddMinutes returns the time shifted forward by m minutes.
// The result must stay within the same calendar day.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	cur, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total := cur + m
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, string(t), m)
	}
	if total == minutesPerDay {
		// Exact end of day; representable only as a boundary value.
		return TimeString("24:00"), nil
	}
	return MinutesOfDay(total)
}

// OnDate combines the wall-clock time with the date portion of d,
// keeping d's location.
func (t TimeString) OnDate(d time.Time) (time.Time, error) {
	m, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), m/60, m%60, 0, 0, d.Location()), nil
}

// String returns the canonical HH:MM form.
func (t TimeString) String() string {
	return string(t)
}

// Format12 renders the time in 12-hour form with an AM/PM marker,
// e.g. "8:00AM" or "12:30PM".
func (t TimeString) Format12() string {
	m, err := t.Minutes()
	if err != nil {
		return string(t)
	}
	hour := m / 60
	minute := m % 60
	marker := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		marker = "PM"
	case hour > 12:
		hour -= 12
		marker = "PM"
	}
	return fmt.Sprintf("%d:%02d%s", hour, minute, marker)
}

// ParseFlexible parses a wall-clock time in either the canonical 24-hour
// "HH:MM" form or the 12-hour "H:MM AM"/"H:MMPM" form (case-insensitive,
// space before the marker optional). Noon and midnight are handled
// explicitly: "12:00AM" is 00:00 and "12:00PM" is 12:00.
func ParseFlexible(raw string) (TimeString, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty value", ErrInvalidTimeFormat)
	}

	upper := strings.ToUpper(s)
	marker := ""
	switch {
	case strings.HasSuffix(upper, "AM"):
		marker = "AM"
	case strings.HasSuffix(upper, "PM"):
		marker = "PM"
	}

	if marker == "" {
		return NewTimeStringFromString(s)
	}

	body := strings.TrimSpace(upper[:len(upper)-2])
	parts := strings.Split(body, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 1 || hour > 12 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
	}

	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
	}

	// 12AM is midnight, 12PM stays noon.
	if hour == 12 {
		hour = 0
	}
	if marker == "PM" {
		hour += 12
	}

	return MinutesOfDay(hour*60 + minute)
}

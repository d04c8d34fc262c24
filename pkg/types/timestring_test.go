package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexible(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want TimeString
	}{
		{name: "canonical 24-hour", raw: "09:00", want: "09:00"},
		{name: "late evening", raw: "23:30", want: "23:30"},
		{name: "morning with marker", raw: "8:00AM", want: "08:00"},
		{name: "afternoon with marker", raw: "4:30PM", want: "16:30"},
		{name: "space before marker", raw: "8:00 AM", want: "08:00"},
		{name: "lowercase marker", raw: "8:00am", want: "08:00"},
		{name: "mixed case marker", raw: "8:00Pm", want: "20:00"},
		{name: "surrounding whitespace", raw: "  8:00AM  ", want: "08:00"},
		{name: "12AM is midnight", raw: "12:00AM", want: "00:00"},
		{name: "12PM is noon", raw: "12:00PM", want: "12:00"},
		{name: "12:30AM is half past midnight", raw: "12:30AM", want: "00:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlexible(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlexibleRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		"",
		"quarter past nine",
		"25:00",
		"09:60",
		"13:00PM", // 12-hour form cannot carry a 13
		"0:30AM",
		"9AM",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseFlexible(raw)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat)
		})
	}
}

func TestAddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	// Exactly midnight is the one representable boundary value.
	got, err = TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestOnDateKeepsLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, loc)
	got, err := TimeString("09:30").OnDate(date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 10, 15, 9, 30, 0, 0, loc), got)
}

func TestFormat12(t *testing.T) {
	assert.Equal(t, "12:00AM", TimeString("00:00").Format12())
	assert.Equal(t, "8:05AM", TimeString("08:05").Format12())
	assert.Equal(t, "12:00PM", TimeString("12:00").Format12())
	assert.Equal(t, "9:30PM", TimeString("21:30").Format12())
}

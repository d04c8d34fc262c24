package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
)

func TestRecurrenceOptions(t *testing.T) {
	tests := []struct {
		name string
		days domain.DaySet
		want []domain.RecurrenceOption
	}{
		{
			name: "all seven days offers daily",
			days: domain.AllDays,
			want: []domain.RecurrenceOption{
				domain.RecurrenceNone, domain.RecurrenceDaily,
				domain.RecurrenceWeekly, domain.RecurrenceMonthly,
			},
		},
		{
			name: "weekend-only field has no daily",
			days: domain.Weekends,
			want: []domain.RecurrenceOption{
				domain.RecurrenceNone, domain.RecurrenceWeekly, domain.RecurrenceMonthly,
			},
		},
		{
			name: "single operating day",
			days: domain.DaySet(0).Add(time.Tuesday),
			want: []domain.RecurrenceOption{
				domain.RecurrenceNone, domain.RecurrenceWeekly, domain.RecurrenceMonthly,
			},
		},
		{
			name: "no operating days",
			days: 0,
			want: []domain.RecurrenceOption{domain.RecurrenceNone, domain.RecurrenceMonthly},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecurrenceOptions(tt.days))
		})
	}
}

func TestExpandRecurrence(t *testing.T) {
	// 2025-10-18 is a Saturday.
	saturday := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)

	t.Run("none expands to the start date only", func(t *testing.T) {
		got := ExpandRecurrence(saturday, domain.RecurrenceNone, domain.AllDays, 90)
		assert.Equal(t, []time.Time{saturday}, got)
	})

	t.Run("weekly lands on the same weekday every cycle", func(t *testing.T) {
		got := ExpandRecurrence(saturday, domain.RecurrenceWeekly, domain.Weekends, 28)
		require.Len(t, got, 5)
		for i, d := range got {
			assert.Equal(t, time.Saturday, d.Weekday())
			assert.Equal(t, saturday.AddDate(0, 0, 7*i), d)
		}
	})

	t.Run("daily skips non-operating days", func(t *testing.T) {
		got := ExpandRecurrence(saturday, domain.RecurrenceDaily, domain.Weekends, 7)
		// Start Saturday, then Sunday, next Saturday, next Sunday.
		require.Len(t, got, 4)
		assert.Equal(t, saturday, got[0])
		assert.Equal(t, saturday.AddDate(0, 0, 1), got[1])
		assert.Equal(t, saturday.AddDate(0, 0, 7), got[2])
		assert.Equal(t, saturday.AddDate(0, 0, 8), got[3])
	})

	t.Run("monthly skips occurrences on closed days", func(t *testing.T) {
		// 2025-11-18 is a Tuesday, 2025-12-18 a Thursday.
		start := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
		tuesdayOnly := domain.DaySet(0).Add(time.Tuesday)

		got := ExpandRecurrence(start, domain.RecurrenceMonthly, tuesdayOnly, 70)
		require.Len(t, got, 2)
		assert.Equal(t, start, got[0])
		assert.Equal(t, time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC), got[1])
	})
}

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
)

func TestNextAvailableDate(t *testing.T) {
	// 2025-10-13 is a Monday.
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

	t.Run("sunday-only field from a monday", func(t *testing.T) {
		sundayOnly := domain.DaySet(0).Add(time.Sunday)

		got, ok := NextAvailableDate(monday, sundayOnly, 90)
		require.True(t, ok)
		assert.Equal(t, time.Sunday, got.Weekday())
		assert.Equal(t, monday.AddDate(0, 0, 6), got)
	})

	t.Run("all-days fast path returns the start date", func(t *testing.T) {
		got, ok := NextAvailableDate(monday, domain.AllDays, 90)
		require.True(t, ok)
		assert.Equal(t, monday, got)
	})

	t.Run("start date itself operating", func(t *testing.T) {
		mondayOnly := domain.DaySet(0).Add(time.Monday)
		got, ok := NextAvailableDate(monday, mondayOnly, 90)
		require.True(t, ok)
		assert.Equal(t, monday, got)
	})

	t.Run("empty set has no date", func(t *testing.T) {
		_, ok := NextAvailableDate(monday, 0, 90)
		assert.False(t, ok)
	})

	t.Run("horizon too short to reach the operating day", func(t *testing.T) {
		sundayOnly := domain.DaySet(0).Add(time.Sunday)
		_, ok := NextAvailableDate(monday, sundayOnly, 3)
		assert.False(t, ok)
	})
}

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	"github.com/vinender/fieldsy-scheduling-service/pkg/types"
)

func bookingAt(date time.Time, start types.TimeString, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		Date:      date,
		StartTime: start,
		Status:    status,
	}
}

func TestEvaluateCancellationWindowThreshold(t *testing.T) {
	date := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
	booking := bookingAt(date, "10:00", domain.StatusConfirmed)

	tests := []struct {
		name      string
		now       time.Time
		wantHours int
		wantOK    bool
	}{
		{
			name:      "24 hours 1 minute out is eligible",
			now:       time.Date(2025, 10, 15, 9, 59, 0, 0, time.UTC),
			wantHours: 24,
			wantOK:    true,
		},
		{
			name:      "exactly 24 hours out is eligible",
			now:       time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
			wantHours: 24,
			wantOK:    true,
		},
		{
			name:      "23 hours 59 minutes out is frozen",
			now:       time.Date(2025, 10, 15, 10, 1, 0, 0, time.UTC),
			wantHours: 23,
			wantOK:    false,
		},
		{
			name:      "already started",
			now:       time.Date(2025, 10, 16, 10, 30, 0, 0, time.UTC),
			wantHours: -1,
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateCancellationWindow(booking, tt.now, 24)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHours, got.HoursRemaining)
			assert.Equal(t, tt.wantOK, got.Eligible)
		})
	}
}

func TestEvaluateCancellationWindowStatusGate(t *testing.T) {
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC) // days of margin

	for _, status := range []domain.BookingStatus{
		domain.StatusPending, domain.StatusCancelled, domain.StatusCompleted,
	} {
		got, err := EvaluateCancellationWindow(bookingAt(date, "10:00", status), now, 24)
		require.NoError(t, err)
		assert.False(t, got.Eligible, "status %s must never be eligible", status)
		assert.Zero(t, got.HoursRemaining)
	}
}

func TestEvaluateCancellationWindowTwelveHourClock(t *testing.T) {
	date := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)

	t.Run("morning marker", func(t *testing.T) {
		booking := bookingAt(date, types.TimeString("8:00AM"), domain.StatusConfirmed)
		now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)

		got, err := EvaluateCancellationWindow(booking, now, 24)
		require.NoError(t, err)
		assert.Equal(t, 48, got.HoursRemaining)
		assert.True(t, got.Eligible)
	})

	t.Run("12AM is midnight", func(t *testing.T) {
		booking := bookingAt(date, types.TimeString("12:00AM"), domain.StatusConfirmed)
		now := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)

		got, err := EvaluateCancellationWindow(booking, now, 24)
		require.NoError(t, err)
		assert.Equal(t, 48, got.HoursRemaining)
	})

	t.Run("12PM is noon", func(t *testing.T) {
		booking := bookingAt(date, types.TimeString("12:00PM"), domain.StatusConfirmed)
		now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

		got, err := EvaluateCancellationWindow(booking, now, 24)
		require.NoError(t, err)
		assert.Equal(t, 24, got.HoursRemaining)
		assert.True(t, got.Eligible)
	})

	t.Run("unparseable time is reported not guessed", func(t *testing.T) {
		booking := bookingAt(date, types.TimeString("quarter past nine"), domain.StatusConfirmed)
		_, err := EvaluateCancellationWindow(booking, time.Now(), 24)
		assert.ErrorIs(t, err, ErrAmbiguousTimeFormat)
	})
}

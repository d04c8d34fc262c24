package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	"github.com/vinender/fieldsy-scheduling-service/pkg/types"
)

func confirmedBooking(date time.Time, start, end types.TimeString, dogs int) *domain.Booking {
	return &domain.Booking{
		FieldID:      1,
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		Status:       domain.StatusConfirmed,
		NumberOfDogs: dogs,
	}
}

func slotStatuses(slots []domain.Slot) map[string]domain.SlotStatus {
	out := make(map[string]domain.SlotStatus, len(slots))
	for _, s := range slots {
		out[s.StartTime.String()] = s.Status
	}
	return out
}

func TestResolveAvailabilityBuffer(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 14, 9, 0, 0, 0, time.UTC) // day before, nothing past

	booking := confirmedBooking(date, "10:00", "11:00", 1)

	tests := []struct {
		name       string
		slotStart  types.TimeString
		slotEnd    types.TimeString
		wantBooked bool
	}{
		{"slot inside post-booking buffer", "11:00", "12:00", true},
		{"slot clear of the buffer", "11:30", "12:30", false},
		{"slot inside pre-booking buffer", "09:00", "10:00", true},
		{"slot overlapping the booking itself", "10:00", "11:00", true},
		{"slot well before", "08:00", "09:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := ResolveAvailability(AvailabilityInput{
				Date:           date,
				Slots:          []domain.Slot{{StartTime: tt.slotStart, EndTime: tt.slotEnd}},
				Bookings:       []*domain.Booking{booking},
				BufferMinutes:  30,
				MaxDogsPerSlot: 4,
				Now:            now,
			})
			require.Len(t, resolved, 1)
			assert.Equal(t, tt.wantBooked, resolved[0].IsBooked)
		})
	}
}

func TestResolveAvailabilityCancelledNeverBlocks(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 14, 9, 0, 0, 0, time.UTC)

	cancelled := confirmedBooking(date, "10:00", "11:00", 1)
	cancelled.Status = domain.StatusCancelled

	resolved := ResolveAvailability(AvailabilityInput{
		Date:           date,
		Slots:          []domain.Slot{{StartTime: "10:00", EndTime: "11:00"}},
		Bookings:       []*domain.Booking{cancelled},
		BufferMinutes:  30,
		MaxDogsPerSlot: 4,
		Now:            now,
	})
	require.Len(t, resolved, 1)
	assert.False(t, resolved[0].IsBooked)
	assert.Equal(t, domain.SlotAvailable, resolved[0].Status)
}

func TestResolveAvailabilityPastPrecedence(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 15, 11, 30, 0, 0, time.UTC)

	booking := confirmedBooking(date, "09:00", "10:00", 2)

	resolved := ResolveAvailability(AvailabilityInput{
		Date:           date,
		Slots:          []domain.Slot{{StartTime: "09:00", EndTime: "10:00"}},
		Bookings:       []*domain.Booking{booking},
		BufferMinutes:  0,
		MaxDogsPerSlot: 4,
		Now:            now,
	})
	require.Len(t, resolved, 1)

	// Both flags survive; the consolidated status reports past.
	assert.True(t, resolved[0].IsPast)
	assert.True(t, resolved[0].IsBooked)
	assert.Equal(t, domain.SlotPast, resolved[0].Status)
	assert.Equal(t, 2, resolved[0].DogsBooked)
	assert.Equal(t, 2, resolved[0].RemainingCapacity)
}

func TestResolveAvailabilityDayScenario(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots("08:00", "18:00", domain.SlotOneHour)
	require.NoError(t, err)
	require.Len(t, slots, 10)

	// 07:00 on the day: nothing past, nothing booked.
	morning := ResolveAvailability(AvailabilityInput{
		Date:           date,
		Slots:          slots,
		BufferMinutes:  15,
		MaxDogsPerSlot: 4,
		Now:            time.Date(2025, 10, 15, 7, 0, 0, 0, time.UTC),
	})
	for _, s := range morning {
		assert.Equal(t, domain.SlotAvailable, s.Status, "slot %s", s.StartTime)
	}

	// 10:30: slots starting at or before the 10:00 boundary are past.
	midday := slotStatuses(ResolveAvailability(AvailabilityInput{
		Date:           date,
		Slots:          slots,
		BufferMinutes:  15,
		MaxDogsPerSlot: 4,
		Now:            time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC),
	}))
	assert.Equal(t, domain.SlotPast, midday["08:00"])
	assert.Equal(t, domain.SlotPast, midday["09:00"])
	assert.Equal(t, domain.SlotPast, midday["10:00"])
	assert.Equal(t, domain.SlotAvailable, midday["11:00"])
	assert.Equal(t, domain.SlotAvailable, midday["17:00"])
}

func TestResolveAvailabilityEarlierDateAllPast(t *testing.T) {
	date := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 15, 7, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots("08:00", "12:00", domain.SlotOneHour)
	require.NoError(t, err)

	for _, s := range ResolveAvailability(AvailabilityInput{
		Date: date, Slots: slots, MaxDogsPerSlot: 1, Now: now,
	}) {
		assert.Equal(t, domain.SlotPast, s.Status)
	}
}

func TestResolveAvailabilityDogCapacity(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 14, 9, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		confirmedBooking(date, "10:00", "11:00", 2),
		confirmedBooking(date, "10:00", "11:00", 1),
	}

	resolved := ResolveAvailability(AvailabilityInput{
		Date:           date,
		Slots:          []domain.Slot{{StartTime: "10:00", EndTime: "11:00"}},
		Bookings:       bookings,
		BufferMinutes:  0,
		MaxDogsPerSlot: 4,
		Now:            now,
	})
	require.Len(t, resolved, 1)
	assert.Equal(t, 3, resolved[0].DogsBooked)
	assert.Equal(t, 1, resolved[0].RemainingCapacity)
	assert.False(t, resolved[0].IsFull())
}

func TestResolveAvailabilityIgnoresOtherDates(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	otherDay := confirmedBooking(date.AddDate(0, 0, 1), "10:00", "11:00", 1)

	resolved := ResolveAvailability(AvailabilityInput{
		Date:           date,
		Slots:          []domain.Slot{{StartTime: "10:00", EndTime: "11:00"}},
		Bookings:       []*domain.Booking{otherDay},
		BufferMinutes:  30,
		MaxDogsPerSlot: 1,
		Now:            time.Date(2025, 10, 14, 9, 0, 0, 0, time.UTC),
	})
	require.Len(t, resolved, 1)
	assert.False(t, resolved[0].IsBooked)
}

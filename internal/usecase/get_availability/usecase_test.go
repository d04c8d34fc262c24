package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	scheduleService "github.com/vinender/fieldsy-scheduling-service/internal/service/schedule"
)

type stubBookingRepo struct {
	bookings []*domain.Booking
}

func (s *stubBookingRepo) GetByFieldWithFilter(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error) {
	return s.bookings, nil
}

type stubScheduleResolver struct {
	schedule *domain.FieldSchedule
	err      error
}

func (s *stubScheduleResolver) ResolveForField(ctx context.Context, fieldID int64) (*domain.FieldSchedule, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.schedule, nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Monday.
var testNow = time.Date(2025, 10, 13, 8, 0, 0, 0, time.UTC)

func testSchedule() *domain.FieldSchedule {
	return &domain.FieldSchedule{
		FieldID:        7,
		OperatingDays:  domain.Weekdays,
		OpeningTime:    "09:00",
		ClosingTime:    "12:00",
		SlotDuration:   domain.SlotOneHour,
		BufferMinutes:  0,
		MaxDogsPerSlot: 2,
	}
}

func newTestUseCase(resolver *stubScheduleResolver, repo *stubBookingRepo) *UseCase {
	uc := NewUseCase(resolver, repo, nopLogger{})
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func TestExecuteOperatingDay(t *testing.T) {
	uc := newTestUseCase(&stubScheduleResolver{schedule: testSchedule()}, &stubBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		FieldID: 7,
		Date:    time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), // Wednesday
	})
	require.NoError(t, err)

	assert.True(t, resp.IsOperatingDay)
	assert.Empty(t, resp.Reason)
	assert.Equal(t, 60, resp.SlotDurationMin)

	require.Len(t, resp.Slots, 3) // 09:00, 10:00, 11:00
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, "10:00", resp.Slots[0].EndTime)
	for _, s := range resp.Slots {
		assert.Equal(t, domain.SlotAvailable, s.Status)
		assert.Equal(t, 2, s.RemainingCapacity)
		assert.Equal(t, 2, s.TotalCapacity)
	}
}

func TestExecuteNonOperatingDay(t *testing.T) {
	uc := newTestUseCase(&stubScheduleResolver{schedule: testSchedule()}, &stubBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		FieldID: 7,
		Date:    time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC), // Saturday
	})
	require.NoError(t, err)

	assert.False(t, resp.IsOperatingDay)
	assert.Equal(t, ReasonNotOperating, resp.Reason)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecuteBookedSlot(t *testing.T) {
	repo := &stubBookingRepo{
		bookings: []*domain.Booking{
			{
				ID:           1,
				FieldID:      7,
				Date:         time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
				StartTime:    "10:00",
				EndTime:      "11:00",
				Status:       domain.StatusConfirmed,
				NumberOfDogs: 2,
			},
		},
	}
	uc := newTestUseCase(&stubScheduleResolver{schedule: testSchedule()}, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		FieldID: 7,
		Date:    time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	booked := resp.Slots[1]
	assert.Equal(t, "10:00", booked.StartTime)
	assert.Equal(t, domain.SlotBooked, booked.Status)
	assert.True(t, booked.IsBooked)
	assert.Equal(t, 2, booked.DogsBooked)
	assert.Equal(t, 0, booked.RemainingCapacity)

	assert.Equal(t, domain.SlotAvailable, resp.Slots[0].Status)
	assert.Equal(t, domain.SlotAvailable, resp.Slots[2].Status)
}

func TestExecutePastSlotsOnSameDay(t *testing.T) {
	uc := newTestUseCase(&stubScheduleResolver{schedule: testSchedule()}, &stubBookingRepo{})
	uc.timeProvider = &fixedClock{now: time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{
		FieldID: 7,
		Date:    time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	assert.True(t, resp.Slots[0].IsPast)  // 09:00
	assert.True(t, resp.Slots[1].IsPast)  // 10:00, already started
	assert.False(t, resp.Slots[2].IsPast) // 11:00
	assert.Equal(t, domain.SlotPast, resp.Slots[0].Status)
	assert.Equal(t, domain.SlotAvailable, resp.Slots[2].Status)
}

func TestExecuteFieldNotFound(t *testing.T) {
	uc := newTestUseCase(&stubScheduleResolver{err: scheduleService.ErrFieldNotFound}, &stubBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		FieldID: 404,
		Date:    time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestExecuteMalformedScheduleProfile(t *testing.T) {
	uc := newTestUseCase(&stubScheduleResolver{err: scheduleService.ErrInvalidScheduleConfig}, &stubBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		FieldID: 7,
		Date:    time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidScheduleConfig)
}

func TestExecuteValidation(t *testing.T) {
	uc := newTestUseCase(&stubScheduleResolver{schedule: testSchedule()}, &stubBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{FieldID: 0, Date: testNow})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{FieldID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

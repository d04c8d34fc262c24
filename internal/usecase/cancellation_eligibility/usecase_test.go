package cancellation_eligibility

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	bookingRepo "github.com/vinender/fieldsy-scheduling-service/internal/infra/storage/booking"
	"github.com/vinender/fieldsy-scheduling-service/pkg/types"
)

type stubBookingRepo struct {
	booking *domain.Booking
}

func (s *stubBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if s.booking == nil || s.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return s.booking, nil
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

var testNow = time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)

func bookingAt(date time.Time, start string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        1,
		UserID:    10,
		FieldID:   7,
		Date:      date,
		StartTime: types.TimeString(start),
		Status:    status,
	}
}

func newTestUseCase(repo *stubBookingRepo) *UseCase {
	uc := NewUseCase(repo, 24, nopLogger{})
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func TestExecuteEligible(t *testing.T) {
	b := bookingAt(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), "10:00", domain.StatusConfirmed)
	uc := newTestUseCase(&stubBookingRepo{booking: b})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 10})
	require.NoError(t, err)

	assert.True(t, resp.Eligible)
	assert.Equal(t, 49, resp.HoursRemaining)
	assert.Equal(t, 24, resp.ThresholdHours)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecuteInsideWindow(t *testing.T) {
	b := bookingAt(time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), "18:00", domain.StatusConfirmed)
	uc := newTestUseCase(&stubBookingRepo{booking: b})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 10})
	require.NoError(t, err)

	assert.False(t, resp.Eligible)
	assert.Equal(t, 9, resp.HoursRemaining)
}

func TestExecuteNonConfirmedNeverEligible(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusCancelled,
		domain.StatusCompleted,
	} {
		t.Run(string(status), func(t *testing.T) {
			b := bookingAt(time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), "10:00", status)
			uc := newTestUseCase(&stubBookingRepo{booking: b})

			resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 10})
			require.NoError(t, err)
			assert.False(t, resp.Eligible)
		})
	}
}

func TestExecuteOnlyOwnerMaySee(t *testing.T) {
	b := bookingAt(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), "10:00", domain.StatusConfirmed)
	uc := newTestUseCase(&stubBookingRepo{booking: b})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecuteUnknownBooking(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 10})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecuteValidation(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0, UserID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 1, UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

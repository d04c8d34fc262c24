package cancellation_eligibility

import (
	"context"
	"errors"
	"fmt"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	bookingRepo "github.com/vinender/fieldsy-scheduling-service/internal/infra/storage/booking"
	"github.com/vinender/fieldsy-scheduling-service/internal/schedule"
)

// Request asks whether a booking can still be cancelled or rescheduled.
type Request struct {
	BookingID int64
	UserID    int64
}

// Response carries the window decision. HoursRemaining is the floor of the
// exact time until the booking starts; it can be negative for bookings
// already under way.
type Response struct {
	BookingID      int64
	Status         string
	HoursRemaining int
	Eligible       bool
	ThresholdHours int
}

// UseCase evaluates the cancellation window of a stored booking against the
// current clock. It is a read-only preview - the actual cancel and
// reschedule paths re-evaluate the window at commit time.
type UseCase struct {
	bookingRepo    BookingRepository
	timeProvider   TimeProvider
	thresholdHours int
	logger         Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	thresholdHours int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		timeProvider:   &RealTimeProvider{},
		thresholdHours: thresholdHours,
		logger:         logger,
	}
}

// Execute evaluates the window.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	uc.logger.Info("CancellationEligibility: booking=%d, user=%d", req.BookingID, req.UserID)

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancellationEligibility: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancellationEligibility: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		uc.logger.Warn("CancellationEligibility: user=%d does not own booking id=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	decision, err := schedule.EvaluateCancellationWindow(booking, uc.timeProvider.Now(), uc.thresholdHours)
	if err != nil {
		uc.logger.Error("CancellationEligibility: booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	threshold := uc.thresholdHours
	if threshold <= 0 {
		threshold = domain.DefaultCancellationThreshold
	}

	return &Response{
		BookingID:      req.BookingID,
		Status:         string(booking.Status),
		HoursRemaining: decision.HoursRemaining,
		Eligible:       decision.Eligible,
		ThresholdHours: threshold,
	}, nil
}

package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	bookingRepo "github.com/vinender/fieldsy-scheduling-service/internal/infra/storage/booking"
	fieldClient "github.com/vinender/fieldsy-scheduling-service/internal/integrations/fieldservice"
	"github.com/vinender/fieldsy-scheduling-service/internal/schedule"
	"github.com/vinender/fieldsy-scheduling-service/internal/service/bookings/models"
	scheduleService "github.com/vinender/fieldsy-scheduling-service/internal/service/schedule"
	"github.com/vinender/fieldsy-scheduling-service/pkg/types"
)

// Service manages booking reads and lifecycle transitions.
type Service struct {
	bookingRepo      BookingRepository
	fieldClient      FieldServiceClient
	scheduleResolver ScheduleResolver
	txManager        TransactionManager
	timeProvider     TimeProvider
	thresholdHours   int
	logger           Logger
}

func NewService(
	bookingRepo BookingRepository,
	fieldClient FieldServiceClient,
	scheduleResolver ScheduleResolver,
	txManager TransactionManager,
	timeProvider TimeProvider,
	thresholdHours int,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:      bookingRepo,
		fieldClient:      fieldClient,
		scheduleResolver: scheduleResolver,
		txManager:        txManager,
		timeProvider:     timeProvider,
		thresholdHours:   thresholdHours,
		logger:           logger,
	}
}

// GetByID fetches a booking. Visible to the booking's owner and to the
// owner of the field it reserves.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings returns a user's bookings, optionally narrowed by status.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetFieldBookings returns the bookings of a field with optional filtering.
// Restricted to the field's owner.
func (s *Service) GetFieldBookings(ctx context.Context, req *models.GetFieldBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetFieldBookings: fetching bookings for field=%d, user=%d", req.FieldID, req.UserID)

	if err := s.checkOwnerAccess(ctx, req.FieldID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetFieldBookings: invalid filter for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByFieldWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetFieldBookings: repository error for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: GetFieldBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFieldBookings: fetched %d bookings for field=%d", len(bookings), req.FieldID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel cancels a booking on behalf of its owner or the field owner.
//
// Owner cancellations are gated by the time-window policy: a confirmed
// booking can only be cancelled while at least the configured number of
// hours remains before its start. Field owners may cancel at any time;
// the marketplace handles the compensation flow separately.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancelReasonLength {
		s.logger.Warn("Cancel: reason too long for booking id=%d (%d characters)", bookingID, len(req.CancellationReason))
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancelReasonLength)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if booking.UserID == req.UserID {
		if err := s.checkCancellationWindow(booking); err != nil {
			return err
		}
	} else {
		if err := s.checkOwnerAccess(ctx, booking.FieldID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: cancelled booking id=%d", bookingID)
	return nil
}

// Reschedule moves a booking to a new date and start time. Only the booking
// owner may reschedule, while at least the configured number of hours remains
// before the current start. The target slot is checked for availability
// inside a serializable transaction, the same way a fresh booking would be.
func (s *Service) Reschedule(ctx context.Context, bookingID int64, req *models.RescheduleBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Reschedule: booking id=%d by user=%d to %s %s", bookingID, req.UserID, req.Date, req.StartTime)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Reschedule: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Reschedule: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		s.logger.Warn("Reschedule: user=%d does not own booking id=%d", req.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeRescheduled() {
		s.logger.Warn("Reschedule: booking id=%d cannot be rescheduled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotReschedule
	}

	if err := s.checkCancellationWindow(booking); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, now.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if isDateInPast(date, now) {
		return nil, ErrInvalidDate
	}

	startTime, err := types.ParseFlexible(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	fs, err := s.scheduleResolver.ResolveForField(ctx, booking.FieldID)
	if err != nil {
		if errors.Is(err, scheduleService.ErrInvalidScheduleConfig) {
			s.logger.Warn("Reschedule: field=%d has a malformed schedule profile: %v", booking.FieldID, err)
			return nil, ErrInvalidScheduleConfig
		}
		s.logger.Error("Reschedule: failed to resolve schedule for field=%d: %v", booking.FieldID, err)
		return nil, fmt.Errorf("%w: Reschedule - failed to resolve schedule: %v", ErrInternal, err)
	}

	if !schedule.IsOperatingDay(date, fs.OperatingDays) {
		s.logger.Warn("Reschedule: field=%d is closed on %s", booking.FieldID, req.Date)
		return nil, ErrFieldClosed
	}

	endTime, err := startTime.AddMinutes(fs.SlotDuration.Minutes())
	if err != nil {
		return nil, ErrSlotMisaligned
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Row-locked read of the target date's bookings (FOR UPDATE)
		bookings, err := s.bookingRepo.GetByFieldWithFilter(txCtx, domain.FieldBookingsFilter{
			FieldID:   booking.FieldID,
			StartDate: &date,
			EndDate:   &date,
		})
		if err != nil {
			s.logger.Error("Reschedule: failed to get bookings for field=%d: %v", booking.FieldID, err)
			return fmt.Errorf("%w: Reschedule - failed to get bookings: %v", ErrInternal, err)
		}

		// The booking being moved must not block its own target slot.
		others := make([]*domain.Booking, 0, len(bookings))
		for _, b := range bookings {
			if b.ID != booking.ID {
				others = append(others, b)
			}
		}

		if err := s.checkTargetSlot(date, startTime, fs, others, now, booking.NumberOfDogs); err != nil {
			s.logger.Warn("Reschedule: %v", err)
			return err
		}

		if err := s.bookingRepo.Reschedule(txCtx, bookingID, date, startTime, endTime); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Reschedule: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reschedule: moved booking id=%d to %s %s", bookingID, req.Date, startTime)

	booking.Date = date
	booking.StartTime = startTime
	booking.EndTime = endTime
	return models.FromDomainBooking(booking), nil
}

// Helper methods

// checkTargetSlot verifies that the target slot exists in the schedule, is
// available, and can take the booking's dogs.
func (s *Service) checkTargetSlot(
	date time.Time,
	startTime types.TimeString,
	fs *domain.FieldSchedule,
	bookings []*domain.Booking,
	now time.Time,
	numberOfDogs int,
) error {
	slots, err := schedule.GenerateSlots(fs.OpeningTime, fs.ClosingTime, fs.SlotDuration)
	if err != nil {
		return fmt.Errorf("%w: checkTargetSlot - failed to generate slots: %v", ErrInternal, err)
	}

	resolved := schedule.ResolveAvailability(schedule.AvailabilityInput{
		Date:           date,
		Slots:          slots,
		Bookings:       bookings,
		BufferMinutes:  fs.BufferMinutes,
		MaxDogsPerSlot: fs.MaxDogsPerSlot,
		Now:            now,
	})

	for i := range resolved {
		if resolved[i].StartTime != startTime {
			continue
		}
		if resolved[i].Status != domain.SlotAvailable {
			return fmt.Errorf("%w: %s on %s is %s",
				ErrSlotNotAvailable, startTime, date.Format(domain.DateFormat), resolved[i].Status)
		}
		if resolved[i].RemainingCapacity < numberOfDogs {
			return fmt.Errorf("%w: %s on %s has capacity for %d more dogs, %d needed",
				ErrSlotNotAvailable, startTime, date.Format(domain.DateFormat),
				resolved[i].RemainingCapacity, numberOfDogs)
		}
		return nil
	}

	return ErrSlotMisaligned
}

func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

func (s *Service) checkCancellationWindow(booking *domain.Booking) error {
	// Pending bookings are not yet locked in; only confirmed ones are
	// subject to the window.
	if booking.Status != domain.StatusConfirmed {
		return nil
	}

	decision, err := schedule.EvaluateCancellationWindow(booking, s.timeProvider.Now(), s.thresholdHours)
	if err != nil {
		s.logger.Error("checkCancellationWindow: booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: checkCancellationWindow: %v", ErrInternal, err)
	}

	if !decision.Eligible {
		s.logger.Warn("checkCancellationWindow: booking id=%d inside window, %d hours remaining",
			booking.ID, decision.HoursRemaining)
		return ErrWindowClosed
	}

	return nil
}

// checkUserAccess allows the booking owner and the field owner through.
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.UserID == userID {
		return nil
	}

	if err := s.checkOwnerAccess(ctx, booking.FieldID, userID); err != nil {
		return ErrAccessDenied
	}

	return nil
}

// checkOwnerAccess verifies that the user owns the field.
func (s *Service) checkOwnerAccess(ctx context.Context, fieldID int64, userID int64) error {
	field, err := s.fieldClient.GetActiveField(ctx, fieldID)
	if err != nil {
		if errors.Is(err, fieldClient.ErrFieldNotFound) {
			s.logger.Warn("checkOwnerAccess: field id=%d not found", fieldID)
			return ErrFieldNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get field id=%d: %v", fieldID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get field: %v", ErrInternal, err)
	}

	if field.OwnerID != userID {
		s.logger.Warn("checkOwnerAccess: user=%d does not own field=%d", userID, fieldID)
		return ErrAccessDenied
	}

	return nil
}

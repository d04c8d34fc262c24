package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	"github.com/vinender/fieldsy-scheduling-service/internal/schedule"
	scheduleService "github.com/vinender/fieldsy-scheduling-service/internal/service/schedule"
)

// UseCase creates bookings. A request without recurrence creates exactly one
// booking; a recurring request expands into every operating date the pattern
// hits within the horizon and creates them all, or none.
type UseCase struct {
	bookingRepo      BookingRepository
	scheduleResolver ScheduleResolver
	txManager        TransactionManager
	timeProvider     TimeProvider
	horizonDays      int
	logger           Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	scheduleResolver ScheduleResolver,
	txManager TransactionManager,
	horizonDays int,
	logger Logger,
) *UseCase {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}
	return &UseCase{
		bookingRepo:      bookingRepo,
		scheduleResolver: scheduleResolver,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		horizonDays:      horizonDays,
		logger:           logger,
	}
}

// Execute creates the booking(s) inside a serializable transaction.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, field=%d, date=%s, time=%s, dogs=%d",
		req.UserID, req.FieldID, req.Date.Format(domain.DateFormat), req.StartTime, req.NumberOfDogs)

	// 1. Validate and normalize input
	parsed, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time
	now := uc.timeProvider.Now()

	// 3. Resolve the field's effective schedule
	fs, err := uc.scheduleResolver.ResolveForField(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, scheduleService.ErrFieldNotFound) {
			uc.logger.Warn("CreateBooking: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		if errors.Is(err, scheduleService.ErrInvalidScheduleConfig) {
			uc.logger.Warn("CreateBooking: field id=%d has a malformed schedule profile: %v", req.FieldID, err)
			return nil, ErrInvalidScheduleConfig
		}
		uc.logger.Error("CreateBooking: failed to resolve schedule for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to resolve schedule: %v", ErrInternal, err)
	}

	// 4. Date checks: not in the past, field operating
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}
	if !schedule.IsOperatingDay(req.Date, fs.OperatingDays) {
		uc.logger.Warn("CreateBooking: field=%d is closed on %s", req.FieldID, req.Date.Format(domain.DateFormat))
		return nil, ErrFieldClosed
	}

	// 5. Start time must sit on a slot boundary of this schedule
	if err := validateSlotAlignment(parsed.startTime, fs); err != nil {
		uc.logger.Warn("CreateBooking: slot alignment failed for field=%d, time=%s: %v",
			req.FieldID, parsed.startTime, err)
		return nil, err
	}

	endTime, err := parsed.startTime.AddMinutes(fs.SlotDuration.Minutes())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	// 6. Expand the recurrence into concrete dates
	dates := []time.Time{req.Date}
	if parsed.recurrence != domain.RecurrenceNone {
		if !recurrenceSupported(parsed.recurrence, fs.OperatingDays) {
			uc.logger.Warn("CreateBooking: recurrence %s not supported for field=%d", parsed.recurrence, req.FieldID)
			return nil, ErrRecurrenceNotSupported
		}
		dates = schedule.ExpandRecurrence(req.Date, parsed.recurrence, fs.OperatingDays, uc.horizonDays)
	}

	// 7. Check availability and insert inside one serializable transaction.
	// Every occurrence must be free or the whole request fails - a series
	// with silent holes is worse for the customer than an explicit conflict.
	var created []*domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created = created[:0]

		for _, date := range dates {
			occurrenceDate := date

			// Row-locked read of the date's bookings (FOR UPDATE)
			bookings, err := uc.bookingRepo.GetByFieldWithFilter(txCtx, domain.FieldBookingsFilter{
				FieldID:   req.FieldID,
				StartDate: &occurrenceDate,
				EndDate:   &occurrenceDate,
			})
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get bookings for field=%d, date=%s: %v",
					req.FieldID, occurrenceDate.Format(domain.DateFormat), err)
				return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
			}

			if err := checkSlotAvailable(occurrenceDate, parsed.startTime, fs, bookings, now, req.NumberOfDogs); err != nil {
				uc.logger.Warn("CreateBooking: %v", err)
				return err
			}

			booking := &domain.Booking{
				UserID:       req.UserID,
				FieldID:      req.FieldID,
				Date:         occurrenceDate,
				StartTime:    parsed.startTime,
				EndTime:      endTime,
				Status:       domain.StatusConfirmed,
				NumberOfDogs: req.NumberOfDogs,
				Notes:        req.Notes,
			}
			if parsed.recurrence != domain.RecurrenceNone {
				recurrence := parsed.recurrence
				booking.Recurrence = &recurrence
			}

			stored, err := uc.bookingRepo.Create(txCtx, booking)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to create booking: %v", err)
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}

			created = append(created, stored)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created %d booking(s) for user=%d, field=%d, first id=%d",
		len(created), req.UserID, req.FieldID, created[0].ID)

	resp := &Response{Bookings: make([]Booking, len(created))}
	for i, b := range created {
		resp.Bookings[i] = fromDomainBooking(b)
	}
	return resp, nil
}

// recurrenceSupported reports whether the field's operating days admit the
// requested pattern.
func recurrenceSupported(option domain.RecurrenceOption, days domain.DaySet) bool {
	for _, supported := range schedule.RecurrenceOptions(days) {
		if supported == option {
			return true
		}
	}
	return false
}

func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

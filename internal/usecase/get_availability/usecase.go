package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	"github.com/vinender/fieldsy-scheduling-service/internal/schedule"
	scheduleService "github.com/vinender/fieldsy-scheduling-service/internal/service/schedule"
)

// UseCase resolves the availability of a field on a single date: candidate
// slots from the operating hours, each annotated with past/booked flags and
// remaining dog capacity.
type UseCase struct {
	scheduleResolver ScheduleResolver
	bookingRepo      BookingRepository
	timeProvider     TimeProvider
	logger           Logger
}

func NewUseCase(
	scheduleResolver ScheduleResolver,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleResolver: scheduleResolver,
		bookingRepo:      bookingRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute resolves the day view for a field.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: field=%d, date=%s", req.FieldID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the field's effective schedule
	fs, err := uc.scheduleResolver.ResolveForField(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, scheduleService.ErrFieldNotFound) {
			uc.logger.Warn("GetAvailability: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		if errors.Is(err, scheduleService.ErrInvalidScheduleConfig) {
			uc.logger.Warn("GetAvailability: field id=%d has a malformed schedule profile: %v", req.FieldID, err)
			return nil, ErrInvalidScheduleConfig
		}
		uc.logger.Error("GetAvailability: failed to resolve schedule for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to resolve schedule: %v", ErrInternal, err)
	}

	// 3. Non-operating days answer with an empty slot list and a reason,
	// not an error - the storefront renders them as closed days.
	if !schedule.IsOperatingDay(req.Date, fs.OperatingDays) {
		uc.logger.Info("GetAvailability: field=%d not operating on %s", req.FieldID, req.Date.Format(domain.DateFormat))
		return &Response{
			FieldID:         req.FieldID,
			Date:            req.Date,
			IsOperatingDay:  false,
			Reason:          ReasonNotOperating,
			SlotDurationMin: fs.SlotDuration.Minutes(),
			Slots:           []Slot{},
		}, nil
	}

	// 4. Generate candidate slots from the operating hours
	slots, err := schedule.GenerateSlots(fs.OpeningTime, fs.ClosingTime, fs.SlotDuration)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to generate slots for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 5. Fetch the slot-occupying bookings of the date
	bookings, err := uc.bookingRepo.GetByFieldWithFilter(ctx, domain.FieldBookingsFilter{
		FieldID:   req.FieldID,
		StartDate: &req.Date,
		EndDate:   &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Resolve each slot against the bookings and the clock
	resolved := schedule.ResolveAvailability(schedule.AvailabilityInput{
		Date:           req.Date,
		Slots:          slots,
		Bookings:       bookings,
		BufferMinutes:  fs.BufferMinutes,
		MaxDogsPerSlot: fs.MaxDogsPerSlot,
		Now:            uc.timeProvider.Now(),
	})

	uc.logger.Info("GetAvailability: resolved %d slots for field=%d, date=%s",
		len(resolved), req.FieldID, req.Date.Format(domain.DateFormat))

	return &Response{
		FieldID:         req.FieldID,
		Date:            req.Date,
		IsOperatingDay:  true,
		SlotDurationMin: fs.SlotDuration.Minutes(),
		Slots:           fromDomainSlots(resolved, fs.MaxDogsPerSlot),
	}, nil
}

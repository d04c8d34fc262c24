package recurrence_options

import (
	"context"
	"errors"
	"fmt"

	"github.com/vinender/fieldsy-scheduling-service/internal/schedule"
	scheduleService "github.com/vinender/fieldsy-scheduling-service/internal/service/schedule"
)

// Request asks which recurrence options a field supports.
type Request struct {
	FieldID int64
}

// Response lists the supported options in presentation order.
type Response struct {
	FieldID       int64
	OperatingDays []string
	Options       []string
}

// UseCase derives the bookable recurrence options of a field from its
// operating days: daily needs all seven, weekly needs at least one.
type UseCase struct {
	scheduleResolver ScheduleResolver
	logger           Logger
}

func NewUseCase(scheduleResolver ScheduleResolver, logger Logger) *UseCase {
	return &UseCase{
		scheduleResolver: scheduleResolver,
		logger:           logger,
	}
}

// Execute derives the options.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.FieldID <= 0 {
		return nil, fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}

	uc.logger.Info("RecurrenceOptions: field=%d", req.FieldID)

	fs, err := uc.scheduleResolver.ResolveForField(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, scheduleService.ErrFieldNotFound) {
			uc.logger.Warn("RecurrenceOptions: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		if errors.Is(err, scheduleService.ErrInvalidScheduleConfig) {
			uc.logger.Warn("RecurrenceOptions: field id=%d has a malformed schedule profile: %v", req.FieldID, err)
			return nil, ErrInvalidScheduleConfig
		}
		uc.logger.Error("RecurrenceOptions: failed to resolve schedule for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to resolve schedule: %v", ErrInternal, err)
	}

	options := schedule.RecurrenceOptions(fs.OperatingDays)
	names := make([]string, len(options))
	for i, opt := range options {
		names[i] = string(opt)
	}

	return &Response{
		FieldID:       req.FieldID,
		OperatingDays: fs.OperatingDays.Names(),
		Options:       names,
	}, nil
}

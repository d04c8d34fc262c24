package next_available_date

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	"github.com/vinender/fieldsy-scheduling-service/internal/schedule"
	scheduleService "github.com/vinender/fieldsy-scheduling-service/internal/service/schedule"
)

// UseCase finds the first operating date of a field at or after a start
// date, bounded by the configured horizon.
type UseCase struct {
	scheduleResolver ScheduleResolver
	timeProvider     TimeProvider
	horizonDays      int
	logger           Logger
}

func NewUseCase(
	scheduleResolver ScheduleResolver,
	horizonDays int,
	logger Logger,
) *UseCase {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}
	return &UseCase{
		scheduleResolver: scheduleResolver,
		timeProvider:     &RealTimeProvider{},
		horizonDays:      horizonDays,
		logger:           logger,
	}
}

// Execute runs the search.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.FieldID <= 0 {
		return nil, fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}

	// Zero start means "from today"; starts in the past are clamped to today
	// so a stale client cannot be answered with a date it can no longer book.
	start := req.From
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if start.IsZero() || start.Before(today) {
		start = today
	}

	uc.logger.Info("NextAvailableDate: field=%d, from=%s", req.FieldID, start.Format(domain.DateFormat))

	fs, err := uc.scheduleResolver.ResolveForField(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, scheduleService.ErrFieldNotFound) {
			uc.logger.Warn("NextAvailableDate: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		if errors.Is(err, scheduleService.ErrInvalidScheduleConfig) {
			uc.logger.Warn("NextAvailableDate: field id=%d has a malformed schedule profile: %v", req.FieldID, err)
			return nil, ErrInvalidScheduleConfig
		}
		uc.logger.Error("NextAvailableDate: failed to resolve schedule for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to resolve schedule: %v", ErrInternal, err)
	}

	resp := &Response{
		FieldID:     req.FieldID,
		From:        start,
		HorizonDays: uc.horizonDays,
	}

	if next, ok := schedule.NextAvailableDate(start, fs.OperatingDays, uc.horizonDays); ok {
		resp.NextDate = &next
		uc.logger.Info("NextAvailableDate: field=%d next operating date %s", req.FieldID, next.Format(domain.DateFormat))
	} else {
		uc.logger.Info("NextAvailableDate: field=%d has no operating date within %d days", req.FieldID, uc.horizonDays)
	}

	return resp, nil
}

package create_booking

import (
	"fmt"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	"github.com/vinender/fieldsy-scheduling-service/pkg/types"
)

// parsedRequest is the normalized form of a validated request.
type parsedRequest struct {
	startTime  types.TimeString
	recurrence domain.RecurrenceOption
}

func validateRequest(req *Request) (*parsedRequest, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.FieldID <= 0 {
		return nil, fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.NumberOfDogs < 1 {
		return nil, fmt.Errorf("%w: numberOfDogs must be at least 1", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	startTime, err := types.ParseFlexible(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	recurrence := domain.RecurrenceNone
	if req.Recurrence != nil {
		recurrence = domain.RecurrenceOption(*req.Recurrence)
		if !recurrence.IsValid() {
			return nil, fmt.Errorf("%w: unknown recurrence %q", ErrInvalidInput, *req.Recurrence)
		}
	}

	return &parsedRequest{
		startTime:  startTime,
		recurrence: recurrence,
	}, nil
}

// validateSlotAlignment checks that the start time sits on a slot boundary
// of the schedule and that a full slot fits before closing.
func validateSlotAlignment(startTime types.TimeString, fs *domain.FieldSchedule) error {
	startMin, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	openMin, err := fs.OpeningTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: schedule opening time: %v", ErrInternal, err)
	}

	closeMin, err := fs.ClosingTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: schedule closing time: %v", ErrInternal, err)
	}

	step := fs.SlotDuration.Minutes()

	if startMin < openMin || (startMin-openMin)%step != 0 {
		return ErrSlotMisaligned
	}

	if startMin+step > closeMin {
		return ErrSlotMisaligned
	}

	return nil
}

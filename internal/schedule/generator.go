package schedule

import (
	"fmt"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	"github.com/vinender/fieldsy-scheduling-service/pkg/types"
)

// GenerateSlots produces the ordered candidate slots for one date from the
// field's opening time, closing time and slot granularity. It has no booking
// awareness and no dependency on the current time.
//
// Slots are emitted from the opening time in fixed steps of the slot
// duration. A slot whose end lands exactly on the closing time is kept; a
// slot that would overshoot is dropped, never truncated.
func GenerateSlots(opening, closing types.TimeString, duration domain.SlotDuration) ([]domain.Slot, error) {
	if !duration.IsValid() {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidSlotDuration, duration.Minutes())
	}

	openMin, err := opening.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: opening time: %v", ErrInvalidScheduleConfig, err)
	}
	closeMin, err := closing.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: closing time: %v", ErrInvalidScheduleConfig, err)
	}
	if openMin >= closeMin {
		return nil, fmt.Errorf("%w: opening %s is not before closing %s", ErrInvalidScheduleConfig, opening, closing)
	}

	step := duration.Minutes()
	slots := make([]domain.Slot, 0, (closeMin-openMin)/step)

	for start := openMin; start+step <= closeMin; start += step {
		startTS, err := types.MinutesOfDay(start)
		if err != nil {
			return nil, err
		}
		endTS, err := types.MinutesOfDay(start + step)
		if err != nil {
			return nil, err
		}
		slots = append(slots, domain.Slot{
			StartTime: startTS,
			EndTime:   endTS,
			Label:     domain.DayPartForHour(start / 60),
			Status:    domain.SlotAvailable,
		})
	}

	return slots, nil
}

package create_booking

import (
	"fmt"
	"time"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	"github.com/vinender/fieldsy-scheduling-service/internal/schedule"
	"github.com/vinender/fieldsy-scheduling-service/pkg/types"
)

// checkSlotAvailable resolves the availability of one date and verifies that
// the slot starting at startTime can take numberOfDogs more dogs.
func checkSlotAvailable(
	date time.Time,
	startTime types.TimeString,
	fs *domain.FieldSchedule,
	bookings []*domain.Booking,
	now time.Time,
	numberOfDogs int,
) error {
	slots, err := schedule.GenerateSlots(fs.OpeningTime, fs.ClosingTime, fs.SlotDuration)
	if err != nil {
		return fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
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
			return fmt.Errorf("%w: %s on %s has capacity for %d more dogs, %d requested",
				ErrSlotNotAvailable, startTime, date.Format(domain.DateFormat),
				resolved[i].RemainingCapacity, numberOfDogs)
		}
		return nil
	}

	return ErrSlotMisaligned
}

package schedule

import (
	"time"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	"github.com/vinender/fieldsy-scheduling-service/pkg/types"
)

// AvailabilityInput carries everything ResolveAvailability needs. The
// current moment is always supplied by the caller; the resolver never reads
// a wall clock, which keeps it deterministic under test.
type AvailabilityInput struct {
	Date           time.Time
	Slots          []domain.Slot
	Bookings       []*domain.Booking
	BufferMinutes  int
	MaxDogsPerSlot int
	Now            time.Time
}

// ResolveAvailability annotates each candidate slot with its status for the
// given date. Rules, per slot:
//
//   - Past: the date is today and the slot starts at or before the current
//     hour boundary, or the date is already behind us.
//   - Booked: the slot overlaps any occupying booking's interval after that
//     interval is expanded by the buffer on both ends. Overlap is half-open:
//     slot.start < booking.expandedEnd && slot.end > booking.expandedStart.
//   - Available: otherwise.
//
// Past takes precedence over Booked in the consolidated status; both flags
// are reported separately so no information is lost. Dog capacity is
// annotated from bookings overlapping the unexpanded slot interval.
func ResolveAvailability(in AvailabilityInput) []domain.Slot {
	resolved := make([]domain.Slot, len(in.Slots))

	sameDay := isSameDay(in.Date, in.Now)
	dateBehind := isDateInPast(in.Date, in.Now)
	hourBoundary := in.Now.Hour() * 60

	for i, slot := range in.Slots {
		startMin, err1 := slot.StartTime.Minutes()
		endMin, err2 := slot.EndTime.Minutes()
		if err1 != nil || err2 != nil {
			// Malformed candidate slots never come out of GenerateSlots;
			// report them as past so they are never offered.
			slot.IsPast = true
			slot.Status = domain.SlotPast
			resolved[i] = slot
			continue
		}

		slot.IsPast = dateBehind || (sameDay && startMin <= hourBoundary)
		slot.IsBooked = false
		slot.DogsBooked = 0

		for _, b := range in.Bookings {
			if !b.OccupiesSlot() || !isSameDay(b.Date, in.Date) {
				continue
			}
			bStart, bEnd, ok := bookingInterval(b)
			if !ok {
				continue
			}

			if startMin < bEnd+in.BufferMinutes && endMin > bStart-in.BufferMinutes {
				slot.IsBooked = true
			}
			if startMin < bEnd && endMin > bStart {
				slot.DogsBooked += b.NumberOfDogs
			}
		}

		slot.RemainingCapacity = in.MaxDogsPerSlot - slot.DogsBooked
		if slot.RemainingCapacity < 0 {
			slot.RemainingCapacity = 0
		}

		switch {
		case slot.IsPast:
			slot.Status = domain.SlotPast
		case slot.IsBooked:
			slot.Status = domain.SlotBooked
		default:
			slot.Status = domain.SlotAvailable
		}

		resolved[i] = slot
	}

	return resolved
}

// bookingInterval returns the occupied interval of a booking in minutes
// since midnight. Stored times may still be in the legacy 12-hour form;
// bookings with unparseable times are skipped.
func bookingInterval(b *domain.Booking) (start, end int, ok bool) {
	startTime, err := types.ParseFlexible(b.StartTime.String())
	if err != nil {
		return 0, 0, false
	}
	endTime, err := types.ParseFlexible(b.EndTime.String())
	if err != nil {
		return 0, 0, false
	}

	start, err = startTime.Minutes()
	if err != nil {
		return 0, 0, false
	}
	end, err = endTime.Minutes()
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

// isSameDay reports whether both times fall on the same calendar date.
func isSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast reports whether date is an earlier calendar day than now.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

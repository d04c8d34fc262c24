package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	"github.com/vinender/fieldsy-scheduling-service/pkg/types"
)

// CancellationDecision is the outcome of the time-window policy that gates
// both cancellation and rescheduling. It is computed on demand and never
// cached, because eligibility is a function of the current moment.
type CancellationDecision struct {
	HoursRemaining int
	Eligible       bool
}

// EvaluateCancellationWindow computes the hours remaining until a booking
// starts and whether cancel/reschedule is still permitted against the
// threshold. Hours remaining is the floor of the exact difference, and
// eligibility is inclusive: exactly thresholdHours remaining is eligible.
//
// Only confirmed bookings are evaluated; any other status is ineligible
// immediately, without computing hours. The stored start time may be in the
// canonical 24-hour form or the legacy 12-hour AM/PM form; anything else is
// ErrAmbiguousTimeFormat.
func EvaluateCancellationWindow(booking *domain.Booking, now time.Time, thresholdHours int) (CancellationDecision, error) {
	if thresholdHours <= 0 {
		thresholdHours = domain.DefaultCancellationThreshold
	}

	if booking.Status != domain.StatusConfirmed {
		return CancellationDecision{HoursRemaining: 0, Eligible: false}, nil
	}

	startTime, err := types.ParseFlexible(booking.StartTime.String())
	if err != nil {
		return CancellationDecision{}, fmt.Errorf("%w: %q", ErrAmbiguousTimeFormat, booking.StartTime.String())
	}

	bookingInstant, err := startTime.OnDate(booking.Date.In(now.Location()))
	if err != nil {
		return CancellationDecision{}, fmt.Errorf("%w: %q", ErrAmbiguousTimeFormat, booking.StartTime.String())
	}

	hours := int(math.Floor(bookingInstant.Sub(now).Hours()))

	return CancellationDecision{
		HoursRemaining: hours,
		Eligible:       hours >= thresholdHours,
	}, nil
}

package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrFieldNotFound is returned when the field does not exist in the catalogue.
	ErrFieldNotFound = errors.New("field not found")

	// ErrAccessDenied is returned when the user may not see or modify the booking.
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the booking status rules out cancellation.
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCannotReschedule is returned when the booking status rules out rescheduling.
	ErrCannotReschedule = errors.New("booking cannot be rescheduled")

	// ErrInvalidDate is returned when the target date is in the past.
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrFieldClosed is returned when the field does not operate on the
	// target date.
	ErrFieldClosed = errors.New("field is closed on this date")

	// ErrSlotMisaligned is returned when the target time does not sit on a
	// slot boundary of the field's schedule.
	ErrSlotMisaligned = errors.New("start time does not match a slot boundary")

	// ErrSlotNotAvailable is returned when the target slot is past, booked
	// out, or lacks dog capacity.
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrWindowClosed is returned when the booking starts too soon to cancel
	// or reschedule.
	ErrWindowClosed = errors.New("cancellation window has closed")

	// ErrInvalidScheduleConfig is returned when the field's catalogue
	// profile is malformed and no stored override exists.
	ErrInvalidScheduleConfig = errors.New("invalid schedule configuration")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected service failures.
	ErrInternal = errors.New("service: internal error")
)

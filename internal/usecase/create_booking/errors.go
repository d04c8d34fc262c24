package create_booking

import "errors"

var (
	// ErrFieldNotFound is returned when the field does not exist.
	ErrFieldNotFound = errors.New("field not found")

	// ErrFieldClosed is returned when the field does not operate on the
	// requested date.
	ErrFieldClosed = errors.New("field is closed on this date")

	// ErrInvalidDate is returned when the requested date is in the past.
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrSlotMisaligned is returned when the start time does not sit on a
	// slot boundary of the field's schedule.
	ErrSlotMisaligned = errors.New("start time does not match a slot boundary")

	// ErrSlotNotAvailable is returned when the requested slot (or one of the
	// recurrence occurrences) is past, booked out, or lacks dog capacity.
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrRecurrenceNotSupported is returned when the field's operating days
	// rule out the requested recurrence option.
	ErrRecurrenceNotSupported = errors.New("recurrence option not supported for this field")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidScheduleConfig is returned when the field's catalogue
	// profile is malformed and no stored override exists.
	ErrInvalidScheduleConfig = errors.New("invalid schedule configuration")

	// ErrInternal is returned on unexpected usecase failures.
	ErrInternal = errors.New("usecase: internal error")
)

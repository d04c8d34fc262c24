package schedule

import "errors"

var (
	// ErrInvalidScheduleConfig is returned for malformed field configuration:
	// unknown operating-day tokens or opening time at or after closing time.
	ErrInvalidScheduleConfig = errors.New("schedule: invalid schedule configuration")

	// ErrInvalidSlotDuration is returned when a slot duration is not one of
	// the supported granularities.
	ErrInvalidSlotDuration = errors.New("schedule: invalid slot duration")

	// ErrAmbiguousTimeFormat is returned when a stored booking time string
	// cannot be parsed. This is a data-integrity error from upstream and is
	// reported, never guessed around.
	ErrAmbiguousTimeFormat = errors.New("schedule: ambiguous booking time format")
)

package schedule

import "errors"

var (
	// ErrScheduleNotFound is returned when the field has no stored schedule
	// and the catalogue carries no usable defaults either.
	ErrScheduleNotFound = errors.New("field schedule not found")

	// ErrFieldNotFound is returned when the field does not exist in the catalogue.
	ErrFieldNotFound = errors.New("field not found")

	// ErrAccessDenied is returned when the user does not own the field.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidOperatingDays is returned when the operating day list cannot
	// be resolved or is empty on write.
	ErrInvalidOperatingDays = errors.New("invalid operating days")

	// ErrInvalidOperatingHours is returned when opening/closing times are
	// malformed or out of order.
	ErrInvalidOperatingHours = errors.New("invalid operating hours")

	// ErrInvalidSlotDuration is returned when the duration is not a
	// supported granularity.
	ErrInvalidSlotDuration = errors.New("invalid slot duration")

	// ErrInvalidBuffer is returned when the buffer is out of bounds.
	ErrInvalidBuffer = errors.New("invalid buffer minutes")

	// ErrInvalidCapacity is returned when the per-slot dog capacity is out
	// of bounds.
	ErrInvalidCapacity = errors.New("invalid max dogs per slot")

	// ErrInvalidScheduleConfig is returned when the catalogue carries a
	// malformed schedule profile for a field without a stored override.
	// A missing profile falls back to defaults; a present-but-broken one
	// does not.
	ErrInvalidScheduleConfig = errors.New("invalid schedule configuration")

	// ErrInternal is returned on unexpected service failures.
	ErrInternal = errors.New("service: internal error")
)

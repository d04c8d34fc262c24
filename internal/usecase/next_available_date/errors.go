package next_available_date

import "errors"

var (
	// ErrFieldNotFound is returned when the field does not exist.
	ErrFieldNotFound = errors.New("field not found")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidScheduleConfig is returned when the field's catalogue
	// profile is malformed and no stored override exists.
	ErrInvalidScheduleConfig = errors.New("invalid schedule configuration")

	// ErrInternal is returned on unexpected usecase failures.
	ErrInternal = errors.New("usecase: internal error")
)

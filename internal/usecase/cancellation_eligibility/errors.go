package cancellation_eligibility

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the requester does not own the booking.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected usecase failures.
	ErrInternal = errors.New("usecase: internal error")
)

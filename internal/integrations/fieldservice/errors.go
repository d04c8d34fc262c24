package fieldservice

import "errors"

var (
	// ErrFieldNotFound is returned when the catalogue has no such field.
	ErrFieldNotFound = errors.New("field not found")

	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("fieldservice client: internal error")

	// ErrInvalidResponse is returned when FieldService answers with an
	// unexpected status or an undecodable body.
	ErrInvalidResponse = errors.New("fieldservice client: invalid response")
)

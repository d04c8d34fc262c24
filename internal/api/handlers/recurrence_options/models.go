package recurrence_options

import (
	recurrenceOptions "github.com/vinender/fieldsy-scheduling-service/internal/usecase/recurrence_options"
)

// RecurrenceOptionsResponse HTTP response model
type RecurrenceOptionsResponse struct {
	FieldID       int64    `json:"fieldId"`
	OperatingDays []string `json:"operatingDays"`
	Options       []string `json:"options"`
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *recurrenceOptions.Response) *RecurrenceOptionsResponse {
	return &RecurrenceOptionsResponse{
		FieldID:       resp.FieldID,
		OperatingDays: resp.OperatingDays,
		Options:       resp.Options,
	}
}

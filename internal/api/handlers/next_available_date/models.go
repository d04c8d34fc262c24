package next_available_date

import (
	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	nextAvailableDate "github.com/vinender/fieldsy-scheduling-service/internal/usecase/next_available_date"
)

// NextAvailableDateResponse HTTP response model. NextDate is null when no
// operating date falls within the search horizon.
type NextAvailableDateResponse struct {
	FieldID     int64   `json:"fieldId"`
	From        string  `json:"from"`     // "2025-10-15"
	NextDate    *string `json:"nextDate"` // "2025-10-17" or null
	HorizonDays int     `json:"horizonDays"`
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *nextAvailableDate.Response) *NextAvailableDateResponse {
	out := &NextAvailableDateResponse{
		FieldID:     resp.FieldID,
		From:        resp.From.Format(domain.DateFormat),
		HorizonDays: resp.HorizonDays,
	}

	if resp.NextDate != nil {
		next := resp.NextDate.Format(domain.DateFormat)
		out.NextDate = &next
	}

	return out
}

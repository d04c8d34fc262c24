package create_booking

import (
	"time"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	createBooking "github.com/vinender/fieldsy-scheduling-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FieldID      int64   `json:"fieldId"`
	Date         string  `json:"date"`      // "2025-10-15"
	StartTime    string  `json:"startTime"` // "09:00" or "9:00AM"
	NumberOfDogs int     `json:"numberOfDogs"`
	Recurrence   *string `json:"recurrence,omitempty"` // daily/weekly/monthly
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse HTTP booking model
type BookingResponse struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"userId"`
	FieldID      int64   `json:"fieldId"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	NumberOfDogs int     `json:"numberOfDogs"`
	Recurrence   *string `json:"recurrence,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// CreateBookingResponse HTTP response model. For recurring requests the first
// booking is the anchor on the requested date.
type CreateBookingResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:       userID,
		FieldID:      r.FieldID,
		Date:         date,
		StartTime:    r.StartTime,
		NumberOfDogs: r.NumberOfDogs,
		Recurrence:   r.Recurrence,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	bookings := make([]BookingResponse, len(resp.Bookings))
	for i, b := range resp.Bookings {
		bookings[i] = BookingResponse{
			ID:           b.ID,
			UserID:       b.UserID,
			FieldID:      b.FieldID,
			Date:         b.Date.Format(domain.DateFormat),
			StartTime:    b.StartTime,
			EndTime:      b.EndTime,
			Status:       b.Status,
			NumberOfDogs: b.NumberOfDogs,
			Recurrence:   b.Recurrence,
			Notes:        b.Notes,
			CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		}
	}

	return &CreateBookingResponse{Bookings: bookings}
}

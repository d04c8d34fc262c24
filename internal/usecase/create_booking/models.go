package create_booking

import (
	"time"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
)

// Request creates one booking, or a series when a recurrence is given.
type Request struct {
	UserID       int64
	FieldID      int64
	Date         time.Time
	StartTime    string // "09:00" or "9:00AM"
	NumberOfDogs int
	Recurrence   *string
	Notes        *string
}

// Response carries the created booking(s). For recurring requests the first
// element is the anchor booking on the requested date.
type Response struct {
	Bookings []Booking
}

// Booking is the outward view of a created booking.
type Booking struct {
	ID           int64
	UserID       int64
	FieldID      int64
	Date         time.Time
	StartTime    string
	EndTime      string
	Status       string
	NumberOfDogs int
	Recurrence   *string
	Notes        *string
	CreatedAt    time.Time
}

func fromDomainBooking(b *domain.Booking) Booking {
	out := Booking{
		ID:           b.ID,
		UserID:       b.UserID,
		FieldID:      b.FieldID,
		Date:         b.Date,
		StartTime:    b.StartTime.String(),
		EndTime:      b.EndTime.String(),
		Status:       string(b.Status),
		NumberOfDogs: b.NumberOfDogs,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
	}
	if b.Recurrence != nil {
		recurrence := string(*b.Recurrence)
		out.Recurrence = &recurrence
	}
	return out
}

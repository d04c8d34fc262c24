package domain

import (
	"time"

	"github.com/vinender/fieldsy-scheduling-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a timed reservation of a field
type Booking struct {
	ID      int64
	UserID  int64
	FieldID int64

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	Status       BookingStatus
	NumberOfDogs int
	Recurrence   *RecurrenceOption

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the booking counts against field availability.
// Cancelled bookings never block slots.
func (b *Booking) OccupiesSlot() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking is in a cancellable state.
// The time-window policy is checked separately.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking is in a reschedulable state.
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// FieldBookingsFilter filters bookings of a single field
type FieldBookingsFilter struct {
	FieldID         int64          // required
	StartDate       *time.Time     // period start (optional)
	EndDate         *time.Time     // period end (optional)
	Status          *BookingStatus // status filter (optional)
	IncludeInactive bool           // include cancelled and completed bookings
}

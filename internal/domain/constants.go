package domain

// Default configuration values
const (
	DefaultSlotDuration          = SlotOneHour
	DefaultBufferMinutes         = 0
	DefaultMaxDogsPerSlot        = 1
	DefaultHorizonDays           = 90 // next-available-date search bound
	DefaultCancellationThreshold = 24 // hours before start

	DefaultOpeningTime = "06:00"
	DefaultClosingTime = "21:00"
)

// Business validation constants
const (
	MinBufferMinutes      = 0
	MaxBufferMinutes      = 240
	MinDogsPerSlot        = 1
	MaxDogsPerSlot        = 50
	MinHorizonDays        = 1
	MaxHorizonDays        = 365
	MaxNotesLength        = 500
	MaxCancelReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists booking statuses that never occupy a slot.
// Used when filtering bookings for availability computation.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}

// ActiveStatuses lists booking statuses that occupy a slot.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

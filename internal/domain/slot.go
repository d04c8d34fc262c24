package domain

import "github.com/vinender/fieldsy-scheduling-service/pkg/types"

// SlotStatus is the consolidated status of a candidate slot.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotPast      SlotStatus = "past"
)

// DayPart labels a slot by its start hour.
type DayPart string

const (
	DayPartMorning   DayPart = "morning"   // start hour < 12
	DayPartAfternoon DayPart = "afternoon" // 12 <= start hour < 18
	DayPartEvening   DayPart = "evening"   // start hour >= 18
)

// DayPartForHour returns the label for a slot starting at the given hour.
func DayPartForHour(hour int) DayPart {
	switch {
	case hour < 12:
		return DayPartMorning
	case hour < 18:
		return DayPartAfternoon
	default:
		return DayPartEvening
	}
}

// Slot is an ephemeral bookable window for a field on a single date.
// Past and Booked are exposed separately so callers showing historical data
// keep both facts; Status consolidates them with Past taking precedence.
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Label     DayPart

	Status   SlotStatus
	IsPast   bool
	IsBooked bool

	DogsBooked        int
	RemainingCapacity int
}

// IsFull returns true when no dog capacity remains in the slot.
func (s *Slot) IsFull() bool {
	return s.RemainingCapacity <= 0
}

package get_availability

import (
	"time"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
)

// Reason codes for days without slots.
const (
	ReasonNotOperating = "field_not_operating"
)

// Request asks for the slot availability of a field on a date.
type Request struct {
	FieldID int64
	Date    time.Time
}

// Response carries the resolved day view.
type Response struct {
	FieldID         int64
	Date            time.Time
	IsOperatingDay  bool
	Reason          string // set when IsOperatingDay is false
	SlotDurationMin int
	Slots           []Slot
}

// Slot is a single resolved slot.
type Slot struct {
	StartTime         string
	EndTime           string
	Label             string
	Status            domain.SlotStatus
	IsPast            bool
	IsBooked          bool
	DogsBooked        int
	RemainingCapacity int
	TotalCapacity     int
}

func fromDomainSlots(slots []domain.Slot, totalCapacity int) []Slot {
	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = Slot{
			StartTime:         s.StartTime.String(),
			EndTime:           s.EndTime.String(),
			Label:             string(s.Label),
			Status:            s.Status,
			IsPast:            s.IsPast,
			IsBooked:          s.IsBooked,
			DogsBooked:        s.DogsBooked,
			RemainingCapacity: s.RemainingCapacity,
			TotalCapacity:     totalCapacity,
		}
	}
	return out
}

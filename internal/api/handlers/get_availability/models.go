package get_availability

import (
	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	getAvailability "github.com/vinender/fieldsy-scheduling-service/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	FieldID         int64          `json:"fieldId"`
	Date            string         `json:"date"` // "2025-10-15"
	IsOperatingDay  bool           `json:"isOperatingDay"`
	Reason          string         `json:"reason,omitempty"`
	SlotDurationMin int            `json:"slotDurationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// SlotResponse HTTP slot model
type SlotResponse struct {
	StartTime         string `json:"startTime"` // "10:00"
	EndTime           string `json:"endTime"`   // "11:00"
	Label             string `json:"label"`     // morning/afternoon/evening
	Status            string `json:"status"`
	IsPast            bool   `json:"isPast"`
	IsBooked          bool   `json:"isBooked"`
	DogsBooked        int    `json:"dogsBooked"`
	RemainingCapacity int    `json:"remainingCapacity"`
	TotalCapacity     int    `json:"totalCapacity"`
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:         s.StartTime,
			EndTime:           s.EndTime,
			Label:             s.Label,
			Status:            string(s.Status),
			IsPast:            s.IsPast,
			IsBooked:          s.IsBooked,
			DogsBooked:        s.DogsBooked,
			RemainingCapacity: s.RemainingCapacity,
			TotalCapacity:     s.TotalCapacity,
		}
	}

	return &AvailabilityResponse{
		FieldID:         resp.FieldID,
		Date:            resp.Date.Format(domain.DateFormat),
		IsOperatingDay:  resp.IsOperatingDay,
		Reason:          resp.Reason,
		SlotDurationMin: resp.SlotDurationMin,
		Slots:           slots,
	}
}

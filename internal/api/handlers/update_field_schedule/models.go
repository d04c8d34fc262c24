package update_field_schedule

import (
	"github.com/vinender/fieldsy-scheduling-service/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	OperatingDays       []string `json:"operatingDays"`
	OpeningTime         string   `json:"openingTime"` // "07:00" or "7:00AM"
	ClosingTime         string   `json:"closingTime"` // "19:00" or "7:00PM"
	SlotDurationMinutes int      `json:"slotDurationMinutes"`
	BufferMinutes       int      `json:"bufferMinutes"`
	MaxDogsPerSlot      int      `json:"maxDogsPerSlot"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *UpdateScheduleRequest) ToServiceRequest(userID, fieldID int64) *models.UpsertScheduleRequest {
	return &models.UpsertScheduleRequest{
		UserID:              userID,
		FieldID:             fieldID,
		OperatingDays:       r.OperatingDays,
		OpeningTime:         r.OpeningTime,
		ClosingTime:         r.ClosingTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
		BufferMinutes:       r.BufferMinutes,
		MaxDogsPerSlot:      r.MaxDogsPerSlot,
	}
}

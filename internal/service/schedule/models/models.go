package models

import (
	"time"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
)

// Request models

// UpsertScheduleRequest writes the schedule override of a field.
type UpsertScheduleRequest struct {
	UserID  int64 `json:"userId"`
	FieldID int64 `json:"fieldId"`

	OperatingDays       []string `json:"operatingDays"`
	OpeningTime         string   `json:"openingTime"`
	ClosingTime         string   `json:"closingTime"`
	SlotDurationMinutes int      `json:"slotDurationMinutes"`
	BufferMinutes       int      `json:"bufferMinutes"`
	MaxDogsPerSlot      int      `json:"maxDogsPerSlot"`
}

// Response models

// ScheduleResponse is the resolved schedule of a field.
type ScheduleResponse struct {
	FieldID int64 `json:"fieldId"`

	OperatingDays       []string `json:"operatingDays"` // Monday-first day names
	OpeningTime         string   `json:"openingTime"`   // "06:00"
	ClosingTime         string   `json:"closingTime"`   // "21:00"
	SlotDurationMinutes int      `json:"slotDurationMinutes"`
	BufferMinutes       int      `json:"bufferMinutes"`
	MaxDogsPerSlot      int      `json:"maxDogsPerSlot"`

	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainSchedule converts the domain schedule into the outward DTO.
func FromDomainSchedule(fs *domain.FieldSchedule) *ScheduleResponse {
	if fs == nil {
		return nil
	}

	resp := &ScheduleResponse{
		FieldID:             fs.FieldID,
		OperatingDays:       fs.OperatingDays.Names(),
		OpeningTime:         fs.OpeningTime.String(),
		ClosingTime:         fs.ClosingTime.String(),
		SlotDurationMinutes: fs.SlotDuration.Minutes(),
		BufferMinutes:       fs.BufferMinutes,
		MaxDogsPerSlot:      fs.MaxDogsPerSlot,
	}

	if !fs.UpdatedAt.IsZero() {
		updatedAt := fs.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

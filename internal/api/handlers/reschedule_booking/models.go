package reschedule_booking

import (
	"github.com/vinender/fieldsy-scheduling-service/internal/service/bookings/models"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "09:00" or "9:00AM"
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *RescheduleBookingRequest) ToServiceRequest(userID int64) *models.RescheduleBookingRequest {
	return &models.RescheduleBookingRequest{
		UserID:    userID,
		Date:      r.Date,
		StartTime: r.StartTime,
	}
}

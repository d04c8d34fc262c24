package cancellation_eligibility

import (
	cancellationEligibility "github.com/vinender/fieldsy-scheduling-service/internal/usecase/cancellation_eligibility"
)

// EligibilityResponse HTTP response model. HoursRemaining can be negative
// for bookings already under way.
type EligibilityResponse struct {
	BookingID      int64  `json:"bookingId"`
	Status         string `json:"status"`
	HoursRemaining int    `json:"hoursRemaining"`
	Eligible       bool   `json:"eligible"`
	ThresholdHours int    `json:"thresholdHours"`
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *cancellationEligibility.Response) *EligibilityResponse {
	return &EligibilityResponse{
		BookingID:      resp.BookingID,
		Status:         resp.Status,
		HoursRemaining: resp.HoursRemaining,
		Eligible:       resp.Eligible,
		ThresholdHours: resp.ThresholdHours,
	}
}

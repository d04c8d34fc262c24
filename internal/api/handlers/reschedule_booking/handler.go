package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vinender/fieldsy-scheduling-service/internal/api/handlers"
	"github.com/vinender/fieldsy-scheduling-service/internal/api/middleware"
	"github.com/vinender/fieldsy-scheduling-service/internal/service/bookings"
)

const (
	msgInvalidBookingID      = "invalid booking ID"
	msgInvalidRequestBody    = "invalid request body"
	msgUnauthorized          = "authentication required"
	msgNotFound              = "booking not found"
	msgInvalidScheduleConfig = "field schedule configuration is invalid"
	msgForbidden             = "access denied"
	msgCannotReschedule      = "booking cannot be rescheduled"
	msgWindowClosed          = "cancellation window has closed"
	msgInvalidDate           = "booking date is invalid or in the past"
	msgFieldClosed           = "field is closed on the selected date"
	msgSlotMisaligned        = "start time does not match a slot boundary"
	msgSlotNotAvailable      = "the selected slot is not available"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Reschedule(r.Context(), bookingID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrFieldNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Field not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidScheduleConfig):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Malformed schedule profile: booking_id=%d", bookingID)
			handlers.RespondUnprocessable(w, msgInvalidScheduleConfig)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrCannotReschedule):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Cannot reschedule: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCannotReschedule)

		case errors.Is(err, bookings.ErrWindowClosed):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Window closed: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgWindowClosed)

		case errors.Is(err, bookings.ErrInvalidDate):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid date: booking_id=%d, date=%s",
				bookingID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, bookings.ErrFieldClosed):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Field closed: booking_id=%d, date=%s",
				bookingID, req.Date)
			handlers.RespondBadRequest(w, msgFieldClosed)

		case errors.Is(err, bookings.ErrSlotMisaligned):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot misaligned: booking_id=%d, start=%s",
				bookingID, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotMisaligned)

		case errors.Is(err, bookings.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot not available: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid input: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /bookings/{id}/reschedule - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/reschedule - Booking rescheduled: booking_id=%d, user_id=%d",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package create_booking

import (
	"errors"
	"net/http"

	"github.com/vinender/fieldsy-scheduling-service/internal/api/handlers"
	"github.com/vinender/fieldsy-scheduling-service/internal/api/middleware"
	createBooking "github.com/vinender/fieldsy-scheduling-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody     = "invalid request body"
	msgInvalidDate            = "invalid date format, expected YYYY-MM-DD"
	msgUnauthorized           = "authentication required"
	msgFieldNotFound          = "field not found"
	msgInvalidScheduleConfig  = "field schedule configuration is invalid"
	msgFieldClosed            = "field is closed on the selected date"
	msgInvalidBookingDate     = "booking date is in the past"
	msgSlotMisaligned         = "start time does not match a slot boundary"
	msgSlotNotAvailable       = "the selected slot is not available"
	msgRecurrenceNotSupported = "recurrence option is not supported for this field"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, field_id=%d", userID, req.FieldID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrFieldNotFound):
			h.logger.Warn("POST /bookings - Field not found: field_id=%d", req.FieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, createBooking.ErrInvalidScheduleConfig):
			h.logger.Warn("POST /bookings - Malformed schedule profile: field_id=%d", req.FieldID)
			handlers.RespondUnprocessable(w, msgInvalidScheduleConfig)

		case errors.Is(err, createBooking.ErrFieldClosed):
			h.logger.Warn("POST /bookings - Field closed: user_id=%d, field_id=%d, date=%s",
				userID, req.FieldID, req.Date)
			handlers.RespondBadRequest(w, msgFieldClosed)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: user_id=%d, field_id=%d, date=%s",
				userID, req.FieldID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrSlotMisaligned):
			h.logger.Warn("POST /bookings - Slot misaligned: user_id=%d, field_id=%d, start=%s",
				userID, req.FieldID, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotMisaligned)

		case errors.Is(err, createBooking.ErrRecurrenceNotSupported):
			h.logger.Warn("POST /bookings - Recurrence not supported: user_id=%d, field_id=%d",
				userID, req.FieldID)
			handlers.RespondBadRequest(w, msgRecurrenceNotSupported)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, field_id=%d, error=%v",
				userID, req.FieldID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, field_id=%d, error=%v",
				userID, req.FieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: user_id=%d, field_id=%d, bookings=%d",
		userID, req.FieldID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

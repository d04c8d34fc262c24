package cancellation_eligibility

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vinender/fieldsy-scheduling-service/internal/api/handlers"
	"github.com/vinender/fieldsy-scheduling-service/internal/api/middleware"
	cancellationEligibility "github.com/vinender/fieldsy-scheduling-service/internal/usecase/cancellation_eligibility"
)

const (
	msgInvalidBookingID = "invalid booking ID"
	msgUnauthorized     = "authentication required"
	msgNotFound         = "booking not found"
	msgForbidden        = "access denied"
)

type Handler struct {
	useCase CancellationEligibilityUseCase
	logger  Logger
}

func NewHandler(useCase CancellationEligibilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/cancellation-eligibility
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/cancellation-eligibility - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id}/cancellation-eligibility - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancellationEligibility.Request{
		BookingID: bookingID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancellationEligibility.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/cancellation-eligibility - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancellationEligibility.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/cancellation-eligibility - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancellationEligibility.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{id}/cancellation-eligibility - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /bookings/{id}/cancellation-eligibility - Failed: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/cancellation-eligibility - OK: booking_id=%d, eligible=%t",
		bookingID, result.Eligible)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

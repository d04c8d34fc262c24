package get_field_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/vinender/fieldsy-scheduling-service/internal/api/handlers"
	"github.com/vinender/fieldsy-scheduling-service/internal/api/middleware"
	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	"github.com/vinender/fieldsy-scheduling-service/internal/service/bookings"
	"github.com/vinender/fieldsy-scheduling-service/internal/service/bookings/models"
)

const (
	msgInvalidFieldID   = "invalid field ID"
	msgInvalidStartDate = "invalid startDate format, expected YYYY-MM-DD"
	msgInvalidEndDate   = "invalid endDate format, expected YYYY-MM-DD"
	msgInvalidFilter    = "invalid filter parameters"
	msgUnauthorized     = "authentication required"
	msgFieldNotFound    = "field not found"
	msgForbidden        = "access denied"
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

// Handle GET /api/v1/fields/{fieldId}/bookings?startDate=&endDate=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/bookings - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /fields/{id}/bookings - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req := &models.GetFieldBookingsRequest{
		UserID:  userID,
		FieldID: fieldID,
	}

	query := r.URL.Query()
	if startStr := query.Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			h.logger.Warn("GET /fields/{id}/bookings - Invalid startDate %q: %v", startStr, err)
			handlers.RespondBadRequest(w, msgInvalidStartDate)
			return
		}
		req.StartDate = &start
	}
	if endStr := query.Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			h.logger.Warn("GET /fields/{id}/bookings - Invalid endDate %q: %v", endStr, err)
			handlers.RespondBadRequest(w, msgInvalidEndDate)
			return
		}
		req.EndDate = &end
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if query.Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	result, err := h.service.GetFieldBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id}/bookings - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /fields/{id}/bookings - Access denied: field_id=%d, user_id=%d",
				fieldID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /fields/{id}/bookings - Invalid filter: field_id=%d, error=%v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /fields/{id}/bookings - Failed: field_id=%d, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id}/bookings - OK: field_id=%d, bookings=%d", fieldID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

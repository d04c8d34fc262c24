package update_field_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vinender/fieldsy-scheduling-service/internal/api/handlers"
	"github.com/vinender/fieldsy-scheduling-service/internal/api/middleware"
	scheduleService "github.com/vinender/fieldsy-scheduling-service/internal/service/schedule"
)

const (
	msgInvalidFieldID       = "invalid field ID"
	msgInvalidRequestBody   = "invalid request body"
	msgUnauthorized         = "authentication required"
	msgFieldNotFound        = "field not found"
	msgForbidden            = "access denied"
	msgInvalidOperatingDays = "invalid operating days"
	msgInvalidHours         = "invalid operating hours"
	msgInvalidSlotDuration  = "invalid slot duration, expected 30 or 60 minutes"
	msgInvalidBuffer        = "invalid buffer minutes"
	msgInvalidCapacity      = "invalid max dogs per slot"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/fields/{fieldId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /fields/{id}/schedule - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /fields/{id}/schedule - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /fields/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), req.ToServiceRequest(userID, fieldID))
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrFieldNotFound):
			h.logger.Warn("PUT /fields/{id}/schedule - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, scheduleService.ErrAccessDenied):
			h.logger.Warn("PUT /fields/{id}/schedule - Access denied: field_id=%d, user_id=%d", fieldID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, scheduleService.ErrInvalidOperatingDays):
			h.logger.Warn("PUT /fields/{id}/schedule - Invalid operating days: field_id=%d", fieldID)
			handlers.RespondBadRequest(w, msgInvalidOperatingDays)

		case errors.Is(err, scheduleService.ErrInvalidOperatingHours):
			h.logger.Warn("PUT /fields/{id}/schedule - Invalid operating hours: field_id=%d", fieldID)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, scheduleService.ErrInvalidSlotDuration):
			h.logger.Warn("PUT /fields/{id}/schedule - Invalid slot duration: field_id=%d", fieldID)
			handlers.RespondBadRequest(w, msgInvalidSlotDuration)

		case errors.Is(err, scheduleService.ErrInvalidBuffer):
			h.logger.Warn("PUT /fields/{id}/schedule - Invalid buffer: field_id=%d", fieldID)
			handlers.RespondBadRequest(w, msgInvalidBuffer)

		case errors.Is(err, scheduleService.ErrInvalidCapacity):
			h.logger.Warn("PUT /fields/{id}/schedule - Invalid capacity: field_id=%d", fieldID)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		default:
			h.logger.Error("PUT /fields/{id}/schedule - Failed: field_id=%d, user_id=%d, error=%v",
				fieldID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /fields/{id}/schedule - Schedule stored: field_id=%d, user_id=%d", fieldID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

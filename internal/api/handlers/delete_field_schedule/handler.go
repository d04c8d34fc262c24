package delete_field_schedule

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
	msgInvalidFieldID   = "invalid field ID"
	msgUnauthorized     = "authentication required"
	msgFieldNotFound    = "field not found"
	msgForbidden        = "access denied"
	msgNoStoredOverride = "field has no stored schedule"
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

// Handle DELETE /api/v1/fields/{fieldId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /fields/{id}/schedule - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /fields/{id}/schedule - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.Delete(r.Context(), fieldID, userID); err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrFieldNotFound):
			h.logger.Warn("DELETE /fields/{id}/schedule - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, scheduleService.ErrAccessDenied):
			h.logger.Warn("DELETE /fields/{id}/schedule - Access denied: field_id=%d, user_id=%d", fieldID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, scheduleService.ErrScheduleNotFound):
			h.logger.Warn("DELETE /fields/{id}/schedule - No stored override: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgNoStoredOverride)

		default:
			h.logger.Error("DELETE /fields/{id}/schedule - Failed: field_id=%d, user_id=%d, error=%v",
				fieldID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /fields/{id}/schedule - Override removed: field_id=%d, user_id=%d", fieldID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

package recurrence_options

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vinender/fieldsy-scheduling-service/internal/api/handlers"
	recurrenceOptions "github.com/vinender/fieldsy-scheduling-service/internal/usecase/recurrence_options"
)

const (
	msgInvalidFieldID        = "invalid field ID"
	msgFieldNotFound         = "field not found"
	msgInvalidScheduleConfig = "field schedule configuration is invalid"
)

type Handler struct {
	useCase RecurrenceOptionsUseCase
	logger  Logger
}

func NewHandler(useCase RecurrenceOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/recurrence-options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/recurrence-options - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &recurrenceOptions.Request{FieldID: fieldID})
	if err != nil {
		switch {
		case errors.Is(err, recurrenceOptions.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id}/recurrence-options - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, recurrenceOptions.ErrInvalidScheduleConfig):
			h.logger.Warn("GET /fields/{id}/recurrence-options - Malformed schedule profile: field_id=%d", fieldID)
			handlers.RespondUnprocessable(w, msgInvalidScheduleConfig)

		case errors.Is(err, recurrenceOptions.ErrInvalidInput):
			h.logger.Warn("GET /fields/{id}/recurrence-options - Invalid input: field_id=%d, error=%v", fieldID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /fields/{id}/recurrence-options - Failed: field_id=%d, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id}/recurrence-options - OK: field_id=%d, options=%d",
		fieldID, len(result.Options))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

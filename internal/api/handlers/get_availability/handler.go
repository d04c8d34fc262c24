package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/vinender/fieldsy-scheduling-service/internal/api/handlers"
	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	getAvailability "github.com/vinender/fieldsy-scheduling-service/internal/usecase/get_availability"
)

const (
	msgInvalidFieldID        = "invalid field ID"
	msgMissingDate           = "date query parameter is required"
	msgInvalidDate           = "invalid date format, expected YYYY-MM-DD"
	msgFieldNotFound         = "field not found"
	msgInvalidScheduleConfig = "field schedule configuration is invalid"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/availability - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /fields/{id}/availability - Missing date: field_id=%d", fieldID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		FieldID: fieldID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id}/availability - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, getAvailability.ErrInvalidScheduleConfig):
			h.logger.Warn("GET /fields/{id}/availability - Malformed schedule profile: field_id=%d", fieldID)
			handlers.RespondUnprocessable(w, msgInvalidScheduleConfig)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /fields/{id}/availability - Invalid input: field_id=%d, error=%v", fieldID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /fields/{id}/availability - Failed: field_id=%d, date=%s, error=%v",
				fieldID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id}/availability - OK: field_id=%d, date=%s, slots=%d",
		fieldID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

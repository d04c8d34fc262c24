package next_available_date

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/vinender/fieldsy-scheduling-service/internal/api/handlers"
	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	nextAvailableDate "github.com/vinender/fieldsy-scheduling-service/internal/usecase/next_available_date"
)

const (
	msgInvalidFieldID        = "invalid field ID"
	msgInvalidFrom           = "invalid from date format, expected YYYY-MM-DD"
	msgFieldNotFound         = "field not found"
	msgInvalidScheduleConfig = "field schedule configuration is invalid"
)

type Handler struct {
	useCase NextAvailableDateUseCase
	logger  Logger
}

func NewHandler(useCase NextAvailableDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/next-available-date?from=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/next-available-date - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	var from time.Time
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err = time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /fields/{id}/next-available-date - Invalid from date %q: %v", fromStr, err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &nextAvailableDate.Request{
		FieldID: fieldID,
		From:    from,
	})
	if err != nil {
		switch {
		case errors.Is(err, nextAvailableDate.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id}/next-available-date - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, nextAvailableDate.ErrInvalidScheduleConfig):
			h.logger.Warn("GET /fields/{id}/next-available-date - Malformed schedule profile: field_id=%d", fieldID)
			handlers.RespondUnprocessable(w, msgInvalidScheduleConfig)

		case errors.Is(err, nextAvailableDate.ErrInvalidInput):
			h.logger.Warn("GET /fields/{id}/next-available-date - Invalid input: field_id=%d, error=%v", fieldID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /fields/{id}/next-available-date - Failed: field_id=%d, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id}/next-available-date - OK: field_id=%d, found=%t",
		fieldID, result.NextDate != nil)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

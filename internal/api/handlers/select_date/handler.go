package select_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingDate        = "la fecha es obligatoria"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgDateInPast         = "no se puede seleccionar una fecha pasada"
)

type Handler struct {
	service  WizardService
	location *time.Location
	logger   Logger
}

func NewHandler(service WizardService, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle PUT /api/v1/wizard/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Date == "" {
		h.logger.Warn("PUT /wizard/date - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := req.ParseDate(h.location)
	if err != nil {
		h.logger.Warn("PUT /wizard/date - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.SelectDate(date)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDateInPast):
			h.logger.Warn("PUT /wizard/date - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, wizard.ErrInvalidInput):
			h.logger.Warn("PUT /wizard/date - Invalid date: date=%s, error=%v", req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("PUT /wizard/date - Failed to select date: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /wizard/date - applied=%t, date=%s", result.Applied, req.Date)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromTransitionResult(result))
}

package select_time

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingTime        = "la hora es obligatoria"
	msgInvalidTime        = "formato de hora inválido, se espera HH:MM"
	msgDateNotSelected    = "primero seleccione una fecha"
	msgDateInPast         = "la fecha seleccionada ya pasó"
	msgUnknownSlot        = "la hora no corresponde a un horario de atención"
	msgSlotOccupied       = "el horario seleccionado está ocupado"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/wizard/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Time == "" {
		h.logger.Warn("PUT /wizard/time - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	slot, err := req.ParseTime()
	if err != nil {
		h.logger.Warn("PUT /wizard/time - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.SelectTime(slot)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDateNotSelected):
			h.logger.Warn("PUT /wizard/time - Date not selected: time=%s", slot)
			handlers.RespondBadRequest(w, msgDateNotSelected)

		case errors.Is(err, wizard.ErrDateInPast):
			h.logger.Warn("PUT /wizard/time - Selected date is in the past: time=%s", slot)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, wizard.ErrUnknownSlot):
			h.logger.Warn("PUT /wizard/time - Unknown slot: time=%s", slot)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, wizard.ErrSlotOccupied):
			h.logger.Warn("PUT /wizard/time - Slot occupied: time=%s", slot)
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, wizard.ErrInvalidInput):
			h.logger.Warn("PUT /wizard/time - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("PUT /wizard/time - Failed to select time: time=%s, error=%v", slot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /wizard/time - applied=%t, time=%s", result.Applied, slot)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromTransitionResult(result))
}

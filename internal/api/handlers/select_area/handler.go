package select_area

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingAreaID      = "el área o paquete es obligatorio"
	msgTypeNotSelected    = "primero seleccione el tipo de cita"
	msgAreaNotInCatalog   = "el área o paquete no pertenece al tipo de cita seleccionado"
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

// Handle PUT /api/v1/wizard/area
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectAreaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/area - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SelectArea(req.AreaID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrInvalidInput):
			h.logger.Warn("PUT /wizard/area - Missing area id")
			handlers.RespondBadRequest(w, msgMissingAreaID)

		case errors.Is(err, wizard.ErrTypeNotSelected):
			h.logger.Warn("PUT /wizard/area - Type not selected: area=%q", req.AreaID)
			handlers.RespondBadRequest(w, msgTypeNotSelected)

		case errors.Is(err, wizard.ErrAreaNotInCatalog):
			h.logger.Warn("PUT /wizard/area - Area not in catalog: area=%q", req.AreaID)
			handlers.RespondBadRequest(w, msgAreaNotInCatalog)

		default:
			h.logger.Error("PUT /wizard/area - Failed to select area: area=%q, error=%v", req.AreaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /wizard/area - applied=%t, area=%s", result.Applied, result.State.AreaID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromTransitionResult(result))
}

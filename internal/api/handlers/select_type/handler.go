package select_type

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidType        = "tipo de cita inválido, se espera individual o package"
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

// Handle PUT /api/v1/wizard/type
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/type - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SelectType(req.Type)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrInvalidAppointmentType):
			h.logger.Warn("PUT /wizard/type - Invalid appointment type: type=%q", req.Type)
			handlers.RespondBadRequest(w, msgInvalidType)

		default:
			h.logger.Error("PUT /wizard/type - Failed to select type: type=%q, error=%v", req.Type, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /wizard/type - applied=%t, type=%s", result.Applied, result.State.AppointmentType)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromTransitionResult(result))
}

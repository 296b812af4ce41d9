package retreat_step

import (
	"net/http"

	"github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers"
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

// Handle POST /api/v1/wizard/retreat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.Retreat()

	h.logger.Info("POST /wizard/retreat - applied=%t, step=%s", result.Applied, result.State.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromTransitionResult(result))
}

package reset_wizard

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

// Handle POST /api/v1/wizard/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.Reset()

	h.logger.Info("POST /wizard/reset - Wizard reset")
	handlers.RespondJSON(w, http.StatusOK, handlers.FromTransitionResult(result))
}

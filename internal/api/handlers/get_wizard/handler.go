package get_wizard

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

// Handle GET /api/v1/wizard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	state := h.service.State()

	h.logger.Info("GET /wizard - State retrieved: step=%s, confirmed=%t", state.Step, state.Confirmed)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardState(state))
}

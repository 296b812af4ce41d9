package advance_step

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

// Handle POST /api/v1/wizard/advance
// Заблокированный переход не ошибка: 200 и applied=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.Advance()

	if !result.Applied {
		h.logger.Warn("POST /wizard/advance - Step gate not satisfied: step=%s", result.State.Step)
	} else {
		h.logger.Info("POST /wizard/advance - Moved to step=%s", result.State.Step)
	}
	handlers.RespondJSON(w, http.StatusOK, handlers.FromTransitionResult(result))
}

package confirm_booking

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

// Handle POST /api/v1/wizard/confirm
// Подтверждение возможно только на последнем шаге со всеми выбранными данными,
// иначе 200 и applied=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.Confirm()
	state := result.State

	if !result.Applied {
		h.logger.Warn("POST /wizard/confirm - Not applied: step=%s, confirmed=%t", state.Step, state.Confirmed)
		handlers.RespondJSON(w, http.StatusOK, handlers.FromTransitionResult(result))
		return
	}

	h.logger.Info("POST /wizard/confirm - Booking confirmed: type=%s, area=%s, time=%s",
		state.AppointmentType, state.AreaID, state.Time)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromTransitionResult(result))
}

package get_calendar

import (
	"net/http"

	"github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers"
	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
)

const (
	msgInvalidMonth = "formato de mes inválido, se espera YYYY-MM"
)

type Handler struct {
	availability AvailabilityService
	wizard       WizardService
	logger       Logger
}

func NewHandler(availability AvailabilityService, wizard WizardService, logger Logger) *Handler {
	return &Handler{
		availability: availability,
		wizard:       wizard,
		logger:       logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: month (optional, YYYY-MM, по умолчанию текущий месяц)
// Выбранная в мастере дата отмечается как selected
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month := h.availability.CurrentMonth()

	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := domain.ParseYearMonth(raw)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid month: month=%q, error=%v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		month = parsed
	}

	state := h.wizard.State()
	calendar := h.availability.Calendar(month, state.Date)

	h.logger.Info("GET /calendar - Calendar built: month=%s, cells=%d", month, len(calendar.Cells))
	handlers.RespondJSON(w, http.StatusOK, FromCalendar(calendar))
}

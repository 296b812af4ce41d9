package get_available_slots

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers"
)

const (
	msgMissingDate = "la fecha es obligatoria"
	msgInvalidDate = "formato de fecha inválido, se espera YYYY-MM-DD"
)

type Handler struct {
	availability AvailabilityService
	location     *time.Location
	logger       Logger
}

func NewHandler(availability AvailabilityService, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		availability: availability,
		location:     location,
		logger:       logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := ParseDate(dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	day := h.availability.DaySlots(date)
	isPast := h.availability.IsPast(date)
	response := FromServiceResponse(day, isPast)

	h.logger.Info("GET /available-slots - Slots retrieved: date=%s, total=%d, available=%d, past=%t",
		dateStr, len(response.Slots), len(response.Available), isPast)
	handlers.RespondJSON(w, http.StatusOK, response)
}

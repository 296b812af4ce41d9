package get_appointment_types

import (
	"net/http"

	"github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers"
)

type Handler struct {
	catalogRepo CatalogRepository
	logger      Logger
}

func NewHandler(catalogRepo CatalogRepository, logger Logger) *Handler {
	return &Handler{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Handle GET /api/v1/appointment-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	types := h.catalogRepo.ListAppointmentTypes()

	h.logger.Info("GET /appointment-types - Types retrieved: count=%d", len(types))
	handlers.RespondJSON(w, http.StatusOK, FromDomainTypes(types))
}

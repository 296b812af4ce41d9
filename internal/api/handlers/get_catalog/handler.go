package get_catalog

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers"
	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ScreeningWizard/internal/infra/storage/catalog"
)

const (
	msgTypeNotFound = "tipo de cita no encontrado"
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

// Handle GET /api/v1/catalog/{type}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["type"]

	appointmentType, ok := domain.ParseAppointmentType(raw)
	if !ok {
		h.logger.Warn("GET /catalog/{type} - Unknown appointment type: type=%q", raw)
		handlers.RespondNotFound(w, msgTypeNotFound)
		return
	}

	entries, err := h.catalogRepo.ListByType(appointmentType)
	if err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrUnknownType):
			h.logger.Warn("GET /catalog/{type} - Type has no catalog: type=%s", appointmentType)
			handlers.RespondNotFound(w, msgTypeNotFound)

		default:
			h.logger.Error("GET /catalog/{type} - Failed to list catalog: type=%s, error=%v", appointmentType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /catalog/{type} - Catalog retrieved: type=%s, count=%d", appointmentType, len(entries))
	handlers.RespondJSON(w, http.StatusOK, FromDomainEntries(appointmentType, entries))
}

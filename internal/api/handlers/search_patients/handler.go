package search_patients

import (
	"net/http"

	"github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers"
	patientModels "github.com/m04kA/SMC-ScreeningWizard/internal/service/patients/models"
)

type Handler struct {
	service PatientService
	logger  Logger
}

func NewHandler(service PatientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/patients
// Query params: q (optional; пустой запрос возвращает весь справочник)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	result := h.service.Search(query)

	h.logger.Info("GET /patients - Search completed: query=%q, found=%d", query, len(result))
	handlers.RespondJSON(w, http.StatusOK, patientModels.FromDomainPatientList(result))
}

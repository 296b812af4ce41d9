package select_patient

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingPatientID   = "el ID del paciente es obligatorio"
	msgPatientNotFound    = "paciente no encontrado"
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

// Handle PUT /api/v1/wizard/patient
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectPatientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/patient - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SelectPatient(req.PatientID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrInvalidInput):
			h.logger.Warn("PUT /wizard/patient - Missing patient id")
			handlers.RespondBadRequest(w, msgMissingPatientID)

		case errors.Is(err, wizard.ErrPatientNotFound):
			h.logger.Warn("PUT /wizard/patient - Patient not found: patient_id=%q", req.PatientID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		default:
			h.logger.Error("PUT /wizard/patient - Failed to select patient: patient_id=%q, error=%v", req.PatientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /wizard/patient - applied=%t, patient_id=%s", result.Applied, req.PatientID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromTransitionResult(result))
}

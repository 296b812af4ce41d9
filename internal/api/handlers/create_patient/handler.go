package create_patient

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/patients"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidPatient     = "datos del paciente inválidos"
	msgInvalidName        = "el nombre completo es obligatorio"
	msgInvalidPhone       = "teléfono inválido"
	msgInvalidEmail       = "correo electrónico inválido"
	msgInvalidAge         = "edad inválida, se espera un número entre 0 y 150"
)

var fieldMessages = map[string]string{
	"name":  msgInvalidName,
	"phone": msgInvalidPhone,
	"email": msgInvalidEmail,
	"age":   msgInvalidAge,
}

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

// Handle POST /api/v1/wizard/patient
// Создает пациента из формы и выбирает его в текущую запись
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePatientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/patient - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SelectNewPatient(req.ToServiceRequest())
	if err != nil {
		var fieldErr *patients.FieldError
		switch {
		case errors.As(err, &fieldErr):
			h.logger.Warn("POST /wizard/patient - Validation failed: field=%s, reason=%s", fieldErr.Field, fieldErr.Message)
			msg, ok := fieldMessages[fieldErr.Field]
			if !ok {
				msg = msgInvalidPatient
			}
			handlers.RespondBadRequest(w, msg)

		case errors.Is(err, wizard.ErrInvalidPatient), errors.Is(err, wizard.ErrInvalidInput):
			h.logger.Warn("POST /wizard/patient - Invalid patient data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPatient)

		default:
			h.logger.Error("POST /wizard/patient - Failed to create patient: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	patientID := ""
	if result.State.Patient != nil {
		patientID = result.State.Patient.ID
	}
	h.logger.Info("POST /wizard/patient - applied=%t, patient_id=%s", result.Applied, patientID)

	status := http.StatusCreated
	if !result.Applied {
		status = http.StatusOK
	}
	handlers.RespondJSON(w, status, handlers.FromTransitionResult(result))
}

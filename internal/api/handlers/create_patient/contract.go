package create_patient

import (
	patientModels "github.com/m04kA/SMC-ScreeningWizard/internal/service/patients/models"
	wizardModels "github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard/models"
)

type WizardService interface {
	SelectNewPatient(req *patientModels.CreatePatientRequest) (*wizardModels.TransitionResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package advance_step

import (
	wizardModels "github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard/models"
)

type WizardService interface {
	Advance() *wizardModels.TransitionResult
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

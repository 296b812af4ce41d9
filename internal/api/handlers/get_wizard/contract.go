package get_wizard

import (
	wizardModels "github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard/models"
)

type WizardService interface {
	State() *wizardModels.WizardState
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

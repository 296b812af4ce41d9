package select_time

import (
	wizardModels "github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard/models"
	"github.com/m04kA/SMC-ScreeningWizard/pkg/types"
)

type WizardService interface {
	SelectTime(slot types.TimeString) (*wizardModels.TransitionResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

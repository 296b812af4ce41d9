package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
	availabilityModels "github.com/m04kA/SMC-ScreeningWizard/internal/service/availability/models"
	wizardModels "github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard/models"
)

type AvailabilityService interface {
	CurrentMonth() domain.YearMonth
	Calendar(month domain.YearMonth, selected *time.Time) *availabilityModels.Calendar
}

type WizardService interface {
	State() *wizardModels.WizardState
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

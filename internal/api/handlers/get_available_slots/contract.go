package get_available_slots

import (
	"time"

	availabilityModels "github.com/m04kA/SMC-ScreeningWizard/internal/service/availability/models"
)

type AvailabilityService interface {
	DaySlots(date time.Time) *availabilityModels.DaySlots
	IsPast(date time.Time) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

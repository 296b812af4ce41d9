package get_appointment_types

import "github.com/m04kA/SMC-ScreeningWizard/internal/domain"

type CatalogRepository interface {
	ListAppointmentTypes() []domain.AppointmentTypeInfo
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

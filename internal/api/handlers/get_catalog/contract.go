package get_catalog

import "github.com/m04kA/SMC-ScreeningWizard/internal/domain"

type CatalogRepository interface {
	ListByType(appointmentType domain.AppointmentType) ([]domain.CatalogEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

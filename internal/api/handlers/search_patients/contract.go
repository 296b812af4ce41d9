package search_patients

import "github.com/m04kA/SMC-ScreeningWizard/internal/domain"

type PatientService interface {
	Search(query string) []domain.Patient
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

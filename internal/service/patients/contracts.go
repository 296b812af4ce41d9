package patients

import "github.com/m04kA/SMC-ScreeningWizard/internal/domain"

// PatientRepository интерфейс справочника пациентов
type PatientRepository interface {
	GetByID(id string) (*domain.Patient, error)
	Search(query string) []domain.Patient
}

// IDGenerator генерирует идентификатор нового пациента
type IDGenerator func() string

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

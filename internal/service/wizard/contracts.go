package wizard

import (
	"time"

	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
	patientModels "github.com/m04kA/SMC-ScreeningWizard/internal/service/patients/models"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard/models"
	"github.com/m04kA/SMC-ScreeningWizard/pkg/types"
)

// CatalogRepository интерфейс каталога тестов и пакетов
type CatalogRepository interface {
	GetByID(appointmentType domain.AppointmentType, id string) (*domain.CatalogEntry, error)
}

// AvailabilityService интерфейс проверки даты и слота
type AvailabilityService interface {
	CheckDate(date time.Time) error
	CheckSlot(date time.Time, slot types.TimeString) error
}

// PatientService интерфейс справочника пациентов
type PatientService interface {
	GetByID(id string) (*domain.Patient, error)
	Create(req *patientModels.CreatePatientRequest) (*domain.Patient, error)
}

// Listener получает событие после каждого действия мастера
// Вызывается вне блокировки, может читать состояние сервиса
type Listener func(event models.Event)

// MetricsObserver интерфейс сборщика метрик мастера
type MetricsObserver interface {
	ObserveTransition(action string, applied bool)
	ObserveConfirmation(appointmentType string)
	SetStep(step int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

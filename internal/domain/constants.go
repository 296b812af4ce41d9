package domain

// Wizard constants
const (
	TotalSteps = 5
	FirstStep  = StepTypeSelection
	LastStep   = StepConfirmation
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// New patient validation constants
const (
	MinPatientAge         = 0
	MaxPatientAge         = 150
	MaxPatientNameLength  = 120
	MinPhoneDigits        = 7
	MaxPhoneDigits        = 15
	MaxPatientEmailLength = 254
)

// Fallback texts used when a catalog lookup misses
const (
	FallbackDurationLabel = "Tiempo estimado"
)

// StepTitles заголовки шагов в порядке прохождения мастера
var StepTitles = [TotalSteps]string{
	"Tipo",
	"Área/Paquete",
	"Paciente",
	"Disponibilidad",
	"Confirmar",
}

package models

import (
	"time"

	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
	"github.com/m04kA/SMC-ScreeningWizard/pkg/types"
)

// Action действие мастера
type Action string

const (
	ActionAdvance          Action = "advance"
	ActionRetreat          Action = "retreat"
	ActionSelectType       Action = "select_type"
	ActionSelectArea       Action = "select_area"
	ActionSelectPatient    Action = "select_patient"
	ActionSelectNewPatient Action = "select_new_patient"
	ActionSelectDate       Action = "select_date"
	ActionSelectTime       Action = "select_time"
	ActionConfirm          Action = "confirm"
	ActionReset            Action = "reset"
)

// WizardState неизменяемый снимок состояния мастера
type WizardState struct {
	Step       domain.Step
	StepTitles []string
	TotalSteps int
	CanAdvance bool
	CanRetreat bool
	CanConfirm bool

	AppointmentType domain.AppointmentType
	AreaID          string
	Patient         *domain.Patient
	Date            *time.Time
	Time            types.TimeString
	Confirmed       bool

	Summary Summary
}

// Summary данные для экрана подтверждения
// Неизвестные идентификаторы каталога заменяются запасным текстом
type Summary struct {
	PatientName     string
	PatientPhone    string
	PatientEmail    string
	PatientInitials string

	TypeTitle     string
	AreaTitle     string
	DurationLabel string
	Requirements  string
	Tests         []string
	Route         []domain.RouteStep

	DateLabel string // "martes, 10 de junio de 2025"
	TimeLabel string
}

// TransitionResult результат действия: применено ли оно и состояние после него
type TransitionResult struct {
	Applied bool
	State   *WizardState
}

// Event событие для подписчиков мастера
type Event struct {
	Action  Action
	Applied bool
	From    domain.Step
	To      domain.Step
	Err     error
	State   *WizardState
}

package handlers

import (
	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
	patientModels "github.com/m04kA/SMC-ScreeningWizard/internal/service/patients/models"
	wizardModels "github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard/models"
)

// WizardStateResponse снимок мастера, общий для всех эндпоинтов /wizard
type WizardStateResponse struct {
	Step       int      `json:"step"`
	StepName   string   `json:"stepName"`
	StepTitle  string   `json:"stepTitle"`
	StepNumber int      `json:"stepNumber"`
	TotalSteps int      `json:"totalSteps"`
	StepTitles []string `json:"stepTitles"`
	CanAdvance bool     `json:"canAdvance"`
	CanRetreat bool     `json:"canRetreat"`
	CanConfirm bool     `json:"canConfirm"`
	Confirmed  bool     `json:"confirmed"`

	Selection SelectionResponse `json:"selection"`
	Summary   SummaryResponse   `json:"summary"`
}

// SelectionResponse текущий выбор пользователя
type SelectionResponse struct {
	AppointmentType string                         `json:"appointmentType"`
	AreaID          string                         `json:"areaId"`
	Patient         *patientModels.PatientResponse `json:"patient"`
	Date            *string                        `json:"date"` // YYYY-MM-DD
	Time            string                         `json:"time"` // HH:MM
}

// SummaryResponse данные экрана подтверждения
type SummaryResponse struct {
	PatientName     string              `json:"patientName"`
	PatientPhone    string              `json:"patientPhone"`
	PatientEmail    string              `json:"patientEmail"`
	PatientInitials string              `json:"patientInitials"`
	TypeTitle       string              `json:"typeTitle"`
	AreaTitle       string              `json:"areaTitle"`
	DurationLabel   string              `json:"durationLabel"`
	Requirements    string              `json:"requirements,omitempty"`
	Tests           []string            `json:"tests,omitempty"`
	Route           []RouteStepResponse `json:"route,omitempty"`
	DateLabel       string              `json:"dateLabel"`
	TimeLabel       string              `json:"timeLabel"`
}

// RouteStepResponse шаг маршрута пакета
type RouteStepResponse struct {
	Order           int    `json:"order"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

// TransitionResponse результат действия мастера
type TransitionResponse struct {
	Applied bool                 `json:"applied"`
	State   *WizardStateResponse `json:"state"`
}

// FromWizardState конвертирует снимок сервиса в HTTP модель
func FromWizardState(st *wizardModels.WizardState) *WizardStateResponse {
	resp := &WizardStateResponse{
		Step:       int(st.Step),
		StepName:   st.Step.String(),
		StepTitle:  st.Step.Title(),
		StepNumber: st.Step.Number(),
		TotalSteps: st.TotalSteps,
		StepTitles: st.StepTitles,
		CanAdvance: st.CanAdvance,
		CanRetreat: st.CanRetreat,
		CanConfirm: st.CanConfirm,
		Confirmed:  st.Confirmed,
		Selection: SelectionResponse{
			AppointmentType: string(st.AppointmentType),
			AreaID:          st.AreaID,
			Time:            st.Time.String(),
		},
		Summary: SummaryResponse{
			PatientName:     st.Summary.PatientName,
			PatientPhone:    st.Summary.PatientPhone,
			PatientEmail:    st.Summary.PatientEmail,
			PatientInitials: st.Summary.PatientInitials,
			TypeTitle:       st.Summary.TypeTitle,
			AreaTitle:       st.Summary.AreaTitle,
			DurationLabel:   st.Summary.DurationLabel,
			Requirements:    st.Summary.Requirements,
			Tests:           st.Summary.Tests,
			Route:           FromDomainRoute(st.Summary.Route),
			DateLabel:       st.Summary.DateLabel,
			TimeLabel:       st.Summary.TimeLabel,
		},
	}

	if st.Patient != nil {
		resp.Selection.Patient = patientModels.FromDomainPatient(st.Patient)
	}
	if st.Date != nil {
		date := st.Date.Format(domain.DateFormat)
		resp.Selection.Date = &date
	}

	return resp
}

// FromTransitionResult конвертирует результат действия в HTTP модель
func FromTransitionResult(res *wizardModels.TransitionResult) *TransitionResponse {
	return &TransitionResponse{
		Applied: res.Applied,
		State:   FromWizardState(res.State),
	}
}

// FromDomainRoute конвертирует маршрут пакета в HTTP модель
func FromDomainRoute(route []domain.RouteStep) []RouteStepResponse {
	if len(route) == 0 {
		return nil
	}
	result := make([]RouteStepResponse, len(route))
	for i, step := range route {
		result[i] = RouteStepResponse{
			Order:           step.Order,
			Name:            step.Name,
			DurationMinutes: step.DurationMinutes,
		}
	}
	return result
}

package models

import "github.com/m04kA/SMC-ScreeningWizard/internal/domain"

// CreatePatientRequest данные формы нового пациента
// Возраст приходит текстом, как в поле формы
type CreatePatientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Age   string `json:"age"`
}

// PatientResponse данные пациента
type PatientResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Initials string `json:"initials"`
}

// PatientListResponse список пациентов
type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
}

// FromDomainPatient конвертирует domain модель в DTO
func FromDomainPatient(p *domain.Patient) *PatientResponse {
	if p == nil {
		return nil
	}
	return &PatientResponse{
		ID:       p.ID,
		Name:     p.Name,
		Phone:    p.Phone,
		Email:    p.Email,
		Age:      p.Age,
		Initials: p.Initials(),
	}
}

// FromDomainPatientList конвертирует список domain моделей в DTO
func FromDomainPatientList(patients []domain.Patient) *PatientListResponse {
	resp := &PatientListResponse{
		Patients: make([]PatientResponse, len(patients)),
	}
	for i := range patients {
		resp.Patients[i] = *FromDomainPatient(&patients[i])
	}
	return resp
}

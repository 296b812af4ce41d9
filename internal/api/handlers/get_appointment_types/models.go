package get_appointment_types

import "github.com/m04kA/SMC-ScreeningWizard/internal/domain"

// AppointmentTypesResponse HTTP response model
type AppointmentTypesResponse struct {
	Types []AppointmentTypeResponse `json:"types"`
}

// AppointmentTypeResponse карточка типа записи
type AppointmentTypeResponse struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// FromDomainTypes конвертирует описания типов в HTTP response
func FromDomainTypes(types []domain.AppointmentTypeInfo) *AppointmentTypesResponse {
	resp := &AppointmentTypesResponse{
		Types: make([]AppointmentTypeResponse, len(types)),
	}
	for i, t := range types {
		resp.Types[i] = AppointmentTypeResponse{
			Type:        string(t.Type),
			Title:       t.Title,
			Description: t.Description,
			Features:    t.Features,
		}
	}
	return resp
}

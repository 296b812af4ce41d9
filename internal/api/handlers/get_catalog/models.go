package get_catalog

import (
	"github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers"
	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
)

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Type    string          `json:"type"`
	Entries []EntryResponse `json:"entries"`
}

// EntryResponse тест или пакет каталога
type EntryResponse struct {
	ID              string                       `json:"id"`
	Title           string                       `json:"title"`
	DurationMinutes int                          `json:"durationMinutes"`
	DurationLabel   string                       `json:"durationLabel"`
	Requirements    string                       `json:"requirements"`
	Tests           []string                     `json:"tests,omitempty"`
	Route           []handlers.RouteStepResponse `json:"route,omitempty"`
}

// FromDomainEntries конвертирует записи каталога в HTTP response
func FromDomainEntries(appointmentType domain.AppointmentType, entries []domain.CatalogEntry) *CatalogResponse {
	resp := &CatalogResponse{
		Type:    string(appointmentType),
		Entries: make([]EntryResponse, len(entries)),
	}
	for i := range entries {
		e := &entries[i]
		resp.Entries[i] = EntryResponse{
			ID:              e.ID,
			Title:           e.Title,
			DurationMinutes: e.DurationMinutes,
			DurationLabel:   e.DurationLabel(),
			Requirements:    e.Requirements,
			Tests:           e.Tests,
			Route:           handlers.FromDomainRoute(e.Route),
		}
	}
	return resp
}

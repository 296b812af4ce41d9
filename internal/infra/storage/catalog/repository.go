package catalog

import (
	"fmt"

	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
)

// Repository статический каталог тестов и пакетов
// Данные загружаются один раз и не изменяются, наружу отдаются копии
type Repository struct {
	types   []domain.AppointmentTypeInfo
	entries map[domain.AppointmentType][]domain.CatalogEntry
}

// NewRepository создает каталог со встроенными данными клиники
func NewRepository() *Repository {
	return NewRepositoryWithEntries(appointmentTypes, individualTests, packages)
}

// NewRepositoryWithEntries создает каталог с произвольными данными (для тестов)
func NewRepositoryWithEntries(
	types []domain.AppointmentTypeInfo,
	individual []domain.CatalogEntry,
	pkgs []domain.CatalogEntry,
) *Repository {
	return &Repository{
		types: types,
		entries: map[domain.AppointmentType][]domain.CatalogEntry{
			domain.AppointmentTypeIndividual: individual,
			domain.AppointmentTypePackage:    pkgs,
		},
	}
}

// GetByID ищет запись по типу и идентификатору
func (r *Repository) GetByID(appointmentType domain.AppointmentType, id string) (*domain.CatalogEntry, error) {
	entries, ok := r.entries[appointmentType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, appointmentType)
	}

	for i := range entries {
		if entries[i].ID == id {
			entry := copyEntry(entries[i])
			return &entry, nil
		}
	}

	return nil, fmt.Errorf("%w: type=%s, id=%q", ErrEntryNotFound, appointmentType, id)
}

// ListByType возвращает записи каталога указанного типа в порядке отображения
func (r *Repository) ListByType(appointmentType domain.AppointmentType) ([]domain.CatalogEntry, error) {
	entries, ok := r.entries[appointmentType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, appointmentType)
	}

	result := make([]domain.CatalogEntry, len(entries))
	for i := range entries {
		result[i] = copyEntry(entries[i])
	}
	return result, nil
}

// ListAppointmentTypes возвращает описания типов записи
func (r *Repository) ListAppointmentTypes() []domain.AppointmentTypeInfo {
	result := make([]domain.AppointmentTypeInfo, len(r.types))
	for i, t := range r.types {
		t.Features = append([]string(nil), t.Features...)
		result[i] = t
	}
	return result
}

func copyEntry(e domain.CatalogEntry) domain.CatalogEntry {
	if e.Tests != nil {
		e.Tests = append([]string(nil), e.Tests...)
	}
	if e.Route != nil {
		e.Route = append([]domain.RouteStep(nil), e.Route...)
	}
	return e
}

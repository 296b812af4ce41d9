package patient

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
)

// ErrPatientNotFound возвращается, когда пациент не найден в справочнике
var ErrPatientNotFound = errors.New("patient.repository: patient not found")

var defaultPatients = []domain.Patient{
	{
		ID:    "1",
		Name:  "María González López",
		Phone: "+57 300 123 4567",
		Email: "maria.gonzalez@email.com",
		Age:   34,
	},
	{
		ID:    "2",
		Name:  "Carlos Andrés Ruiz",
		Phone: "+57 301 234 5678",
		Email: "carlos.ruiz@email.com",
		Age:   28,
	},
	{
		ID:    "3",
		Name:  "Ana Sofía Martínez",
		Phone: "+57 302 345 6789",
		Email: "ana.martinez@email.com",
		Age:   41,
	},
}

// Repository статический справочник пациентов
type Repository struct {
	patients []domain.Patient
}

// NewRepository создает справочник со встроенными пациентами
func NewRepository() *Repository {
	return NewRepositoryWithPatients(defaultPatients)
}

// NewRepositoryWithPatients создает справочник с произвольными пациентами (для тестов)
func NewRepositoryWithPatients(patients []domain.Patient) *Repository {
	return &Repository{patients: append([]domain.Patient(nil), patients...)}
}

// GetByID получает пациента по ID
func (r *Repository) GetByID(id string) (*domain.Patient, error) {
	for _, p := range r.patients {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%q", ErrPatientNotFound, id)
}

// Search фильтрует пациентов по имени, телефону или email
// Порядок совпадает с порядком справочника, пустой запрос возвращает всех
func (r *Repository) Search(query string) []domain.Patient {
	result := make([]domain.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		if p.Matches(query) {
			result = append(result, p)
		}
	}
	return result
}

package patients

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
	patientRepo "github.com/m04kA/SMC-ScreeningWizard/internal/infra/storage/patient"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/patients/models"
)

// Service сервис справочника пациентов
type Service struct {
	patientRepo PatientRepository
	newID       IDGenerator
	logger      Logger
}

// NewService создает новый экземпляр сервиса пациентов
// ID новых пациентов генерируются как UUID
func NewService(patientRepo PatientRepository, logger Logger) *Service {
	return &Service{
		patientRepo: patientRepo,
		newID:       uuid.NewString,
		logger:      logger,
	}
}

// Search ищет пациентов по имени, телефону или email
// Запрос сравнивается как есть, пробелы по краям значимы
func (s *Service) Search(query string) []domain.Patient {
	result := s.patientRepo.Search(query)
	s.logger.Info("Search: query=%q, found=%d", query, len(result))
	return result
}

// GetByID получает пациента из справочника
func (s *Service) GetByID(id string) (*domain.Patient, error) {
	p, err := s.patientRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("GetByID: patient id=%q not found", id)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("GetByID: repository error for patient id=%q: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return p, nil
}

// Create строит запись нового пациента из формы
// Запись не добавляется в справочник, она выбирается в текущую запись на прием
func (s *Service) Create(req *models.CreatePatientRequest) (*domain.Patient, error) {
	p, err := validateCreateRequest(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	p.ID = s.newID()

	s.logger.Info("Create: new patient id=%s", p.ID)
	return p, nil
}

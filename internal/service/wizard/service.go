package wizard

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ScreeningWizard/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/availability"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/patients"
	patientModels "github.com/m04kA/SMC-ScreeningWizard/internal/service/patients/models"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard/models"
	"github.com/m04kA/SMC-ScreeningWizard/pkg/types"
)

// Service контроллер мастера записи
// Хранит единственную сессию; все методы безопасны для конкурентного вызова
type Service struct {
	mu        sync.Mutex
	selection domain.Selection

	catalogRepo  CatalogRepository
	availability AvailabilityService
	patients     PatientService
	logger       Logger

	listenersMu    sync.Mutex
	listeners      map[int]Listener
	nextListenerID int
}

// NewService создает новый экземпляр контроллера мастера в начальном состоянии
func NewService(
	catalogRepo CatalogRepository,
	availability AvailabilityService,
	patients PatientService,
	logger Logger,
) *Service {
	return &Service{
		catalogRepo:  catalogRepo,
		availability: availability,
		patients:     patients,
		logger:       logger,
		listeners:    make(map[int]Listener),
	}
}

// Subscribe регистрирует подписчика на события мастера
// Возвращает функцию отписки
func (s *Service) Subscribe(listener Listener) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener

	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		delete(s.listeners, id)
	}
}

// State возвращает снимок текущего состояния
func (s *Service) State() *models.WizardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildState(s.selection.Clone())
}

// Advance переходит на следующий шаг, если текущий шаг пройден
func (s *Service) Advance() *models.TransitionResult {
	result, _ := s.apply(models.ActionAdvance, nil, func(sel *domain.Selection) bool {
		return sel.Advance()
	})
	return result
}

// Retreat возвращается на предыдущий шаг
func (s *Service) Retreat() *models.TransitionResult {
	result, _ := s.apply(models.ActionRetreat, nil, func(sel *domain.Selection) bool {
		return sel.Retreat()
	})
	return result
}

// SelectType выбирает тип записи: individual или package
func (s *Service) SelectType(raw string) (*models.TransitionResult, error) {
	t, ok := domain.ParseAppointmentType(strings.TrimSpace(raw))

	return s.apply(models.ActionSelectType,
		func(_ *domain.Selection) error {
			if !ok {
				return fmt.Errorf("%w: %q", ErrInvalidAppointmentType, raw)
			}
			return nil
		},
		func(sel *domain.Selection) bool {
			return sel.SelectType(t)
		},
	)
}

// SelectArea выбирает тест или пакет из каталога выбранного типа
func (s *Service) SelectArea(areaID string) (*models.TransitionResult, error) {
	areaID = strings.TrimSpace(areaID)

	return s.apply(models.ActionSelectArea,
		func(sel *domain.Selection) error {
			if areaID == "" {
				return fmt.Errorf("%w: area id is required", ErrInvalidInput)
			}
			if !sel.AppointmentType.IsSet() {
				return ErrTypeNotSelected
			}
			if _, err := s.catalogRepo.GetByID(sel.AppointmentType, areaID); err != nil {
				if errors.Is(err, catalogRepo.ErrEntryNotFound) || errors.Is(err, catalogRepo.ErrUnknownType) {
					return fmt.Errorf("%w: %v", ErrAreaNotInCatalog, err)
				}
				return fmt.Errorf("%w: SelectArea - catalog error: %v", ErrInternal, err)
			}
			return nil
		},
		func(sel *domain.Selection) bool {
			return sel.SelectArea(areaID)
		},
	)
}

// SelectPatient выбирает существующего пациента из справочника
func (s *Service) SelectPatient(patientID string) (*models.TransitionResult, error) {
	patientID = strings.TrimSpace(patientID)
	var found *domain.Patient

	return s.apply(models.ActionSelectPatient,
		func(_ *domain.Selection) error {
			if patientID == "" {
				return fmt.Errorf("%w: patient id is required", ErrInvalidInput)
			}
			p, err := s.patients.GetByID(patientID)
			if err != nil {
				if errors.Is(err, patients.ErrPatientNotFound) {
					return fmt.Errorf("%w: id=%q", ErrPatientNotFound, patientID)
				}
				return fmt.Errorf("%w: SelectPatient - patients error: %v", ErrInternal, err)
			}
			found = p
			return nil
		},
		func(sel *domain.Selection) bool {
			return sel.SelectPatient(*found)
		},
	)
}

// SelectNewPatient проверяет форму нового пациента и выбирает его
// Ошибка валидации сохраняет FieldError сервиса пациентов
func (s *Service) SelectNewPatient(req *patientModels.CreatePatientRequest) (*models.TransitionResult, error) {
	var created *domain.Patient

	return s.apply(models.ActionSelectNewPatient,
		func(_ *domain.Selection) error {
			if req == nil {
				return fmt.Errorf("%w: patient form is required", ErrInvalidInput)
			}
			p, err := s.patients.Create(req)
			if err != nil {
				if errors.Is(err, patients.ErrInvalidInput) {
					return fmt.Errorf("%w: %w", ErrInvalidPatient, err)
				}
				return fmt.Errorf("%w: SelectNewPatient - patients error: %v", ErrInternal, err)
			}
			created = p
			return nil
		},
		func(sel *domain.Selection) bool {
			return sel.SelectPatient(*created)
		},
	)
}

// SelectDate выбирает дату; прошедшие даты отклоняются, выбранное время сохраняется
func (s *Service) SelectDate(date time.Time) (*models.TransitionResult, error) {
	return s.apply(models.ActionSelectDate,
		func(_ *domain.Selection) error {
			return s.mapAvailabilityError(s.availability.CheckDate(date))
		},
		func(sel *domain.Selection) bool {
			return sel.SelectDate(date)
		},
	)
}

// SelectTime выбирает свободный слот на выбранную дату
func (s *Service) SelectTime(slot types.TimeString) (*models.TransitionResult, error) {
	return s.apply(models.ActionSelectTime,
		func(sel *domain.Selection) error {
			if slot.IsZero() {
				return fmt.Errorf("%w: time is required", ErrInvalidInput)
			}
			if sel.Date == nil {
				return ErrDateNotSelected
			}
			return s.mapAvailabilityError(s.availability.CheckSlot(*sel.Date, slot))
		},
		func(sel *domain.Selection) bool {
			return sel.SelectTime(slot)
		},
	)
}

// Confirm подтверждает запись на шаге подтверждения
func (s *Service) Confirm() *models.TransitionResult {
	result, _ := s.apply(models.ActionConfirm, nil, func(sel *domain.Selection) bool {
		return sel.Confirm()
	})
	return result
}

// Reset возвращает мастер в начальное состояние
func (s *Service) Reset() *models.TransitionResult {
	result, _ := s.apply(models.ActionReset, nil, func(sel *domain.Selection) bool {
		sel.Reset()
		return true
	})
	return result
}

// apply выполняет действие под блокировкой и уведомляет подписчиков
// После подтверждения все действия, кроме Reset, игнорируются без проверки
func (s *Service) apply(
	action models.Action,
	validate func(sel *domain.Selection) error,
	mutate func(sel *domain.Selection) bool,
) (*models.TransitionResult, error) {
	s.mu.Lock()

	from := s.selection.Step
	var (
		applied bool
		err     error
	)

	switch {
	case s.selection.Confirmed && action != models.ActionReset:
		s.logger.Warn("%s: ignored, booking is already confirmed", action)
	default:
		if validate != nil {
			err = validate(&s.selection)
		}
		if err != nil {
			s.logger.Warn("%s: rejected at step %d: %v", action, from, err)
			break
		}
		applied = mutate(&s.selection)
		if applied {
			s.logger.Info("%s: applied, step %d -> %d", action, from, s.selection.Step)
		} else {
			s.logger.Info("%s: not applied at step %d", action, from)
		}
	}

	state := s.buildState(s.selection.Clone())
	s.mu.Unlock()

	s.notify(models.Event{
		Action:  action,
		Applied: applied,
		From:    from,
		To:      state.Step,
		Err:     err,
		State:   state,
	})

	if err != nil {
		return nil, err
	}
	return &models.TransitionResult{Applied: applied, State: state}, nil
}

func (s *Service) notify(event models.Event) {
	s.listenersMu.Lock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(event)
	}
}

func (s *Service) mapAvailabilityError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, availability.ErrDateInPast):
		return fmt.Errorf("%w: %v", ErrDateInPast, err)
	case errors.Is(err, availability.ErrUnknownSlot):
		return fmt.Errorf("%w: %v", ErrUnknownSlot, err)
	case errors.Is(err, availability.ErrSlotOccupied):
		return fmt.Errorf("%w: %v", ErrSlotOccupied, err)
	case errors.Is(err, availability.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: availability error: %v", ErrInternal, err)
	}
}

// buildState собирает снимок состояния вместе с данными экрана подтверждения
func (s *Service) buildState(sel domain.Selection) *models.WizardState {
	titles := make([]string, len(domain.StepTitles))
	copy(titles, domain.StepTitles[:])

	state := &models.WizardState{
		Step:            sel.Step,
		StepTitles:      titles,
		TotalSteps:      domain.TotalSteps,
		CanAdvance:      !sel.Confirmed && sel.Step < domain.LastStep && sel.CanAdvance(),
		CanRetreat:      sel.CanRetreat(),
		CanConfirm:      !sel.Confirmed && sel.Step == domain.StepConfirmation && sel.IsComplete(),
		AppointmentType: sel.AppointmentType,
		AreaID:          sel.AreaID,
		Patient:         sel.Patient,
		Date:            sel.Date,
		Time:            sel.Time,
		Confirmed:       sel.Confirmed,
	}
	state.Summary = s.buildSummary(&sel)

	return state
}

func (s *Service) buildSummary(sel *domain.Selection) models.Summary {
	var summary models.Summary

	if sel.Patient != nil {
		summary.PatientName = sel.Patient.Name
		summary.PatientPhone = sel.Patient.Phone
		summary.PatientEmail = sel.Patient.Email
		summary.PatientInitials = sel.Patient.Initials()
	}

	summary.TypeTitle = sel.AppointmentType.Title()

	if sel.AreaID != "" {
		summary.AreaTitle = sel.AreaID
		summary.DurationLabel = domain.FallbackDurationLabel

		if sel.AppointmentType.IsSet() {
			entry, err := s.catalogRepo.GetByID(sel.AppointmentType, sel.AreaID)
			if err == nil {
				summary.AreaTitle = entry.Title
				summary.DurationLabel = entry.DurationLabel()
				summary.Requirements = entry.Requirements
				summary.Tests = entry.Tests
				summary.Route = entry.Route
			}
		}
	}

	if sel.Date != nil {
		summary.DateLabel = domain.FormatLongDateES(*sel.Date)
	}
	summary.TimeLabel = sel.Time.String()

	return summary
}

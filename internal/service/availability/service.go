package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/availability/models"
	"github.com/m04kA/SMC-ScreeningWizard/pkg/types"
)

// Service сервис доступности: календарь и слоты приема
type Service struct {
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	scheduleRepo ScheduleRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Today возвращает сегодняшнюю дату (полночь) в часовом поясе клиники
func (s *Service) Today() time.Time {
	return domain.DateOnly(s.timeProvider.Now())
}

// CurrentMonth возвращает текущий месяц
func (s *Service) CurrentMonth() domain.YearMonth {
	return domain.NewYearMonth(s.timeProvider.Now())
}

// IsPast проверяет, что дата строго раньше сегодняшней (время суток не учитывается)
func (s *Service) IsPast(date time.Time) bool {
	return civilDate(date).Before(civilDate(s.timeProvider.Now()))
}

// IsToday проверяет, что дата совпадает с сегодняшней
func (s *Service) IsToday(date time.Time) bool {
	return civilDate(date).Equal(civilDate(s.timeProvider.Now()))
}

// Calendar строит сетку месяца с отметками прошедших дней, сегодняшнего и выбранного
func (s *Service) Calendar(month domain.YearMonth, selected *time.Time) *models.Calendar {
	loc := s.timeProvider.Now().Location()
	grid := domain.CalendarGrid(month, loc)

	cells := make([]models.Day, len(grid))
	for i, cell := range grid {
		if cell.Blank {
			cells[i] = models.Day{Blank: true}
			continue
		}
		cells[i] = models.Day{
			Date:     cell.Date,
			IsPast:   s.IsPast(cell.Date),
			IsToday:  s.IsToday(cell.Date),
			Selected: selected != nil && civilDate(*selected).Equal(civilDate(cell.Date)),
		}
	}

	return &models.Calendar{
		Month:     month,
		MonthName: domain.MonthNameES(month.Month),
		Prev:      month.Prev(),
		Next:      month.Next(),
		Weekdays:  domain.WeekdayShortNamesES[:],
		Cells:     cells,
	}
}

// AvailableSlots возвращает свободные слоты на дату в порядке возрастания
func (s *Service) AvailableSlots(date time.Time) []types.TimeString {
	all := s.scheduleRepo.ListSlots(date)
	result := make([]types.TimeString, 0, len(all))
	for _, slot := range all {
		if !s.scheduleRepo.IsOccupied(date, slot) {
			result = append(result, slot)
		}
	}
	return result
}

// DaySlots возвращает все слоты на дату с признаком занятости
func (s *Service) DaySlots(date time.Time) *models.DaySlots {
	all := s.scheduleRepo.ListSlots(date)
	slots := make([]models.Slot, len(all))
	available := make([]types.TimeString, 0, len(all))

	for i, slot := range all {
		occupied := s.scheduleRepo.IsOccupied(date, slot)
		slots[i] = models.Slot{Time: slot, Occupied: occupied}
		if !occupied {
			available = append(available, slot)
		}
	}

	s.logger.Info("DaySlots: date=%s, total=%d, available=%d",
		date.Format(domain.DateFormat), len(slots), len(available))

	return &models.DaySlots{
		Date:      domain.DateOnly(date),
		Slots:     slots,
		Available: available,
	}
}

// CheckDate проверяет, что дату можно выбрать
func (s *Service) CheckDate(date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if s.IsPast(date) {
		return fmt.Errorf("%w: %s", ErrDateInPast, date.Format(domain.DateFormat))
	}
	return nil
}

// CheckSlot проверяет, что слот на дату можно выбрать
func (s *Service) CheckSlot(date time.Time, slot types.TimeString) error {
	if err := s.CheckDate(date); err != nil {
		return err
	}
	if !s.scheduleRepo.HasSlot(date, slot) {
		return fmt.Errorf("%w: %s", ErrUnknownSlot, slot)
	}
	if s.scheduleRepo.IsOccupied(date, slot) {
		return fmt.Errorf("%w: %s %s", ErrSlotOccupied, date.Format(domain.DateFormat), slot)
	}
	return nil
}

// civilDate приводит дату к полуночи UTC по её календарным году/месяцу/дню,
// чтобы сравнение не зависело от часового пояса значения
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package schedule

import (
	"time"

	"github.com/m04kA/SMC-ScreeningWizard/pkg/types"
)

// DefaultSlotMinutes шаг слотов приема
const DefaultSlotMinutes = 30

// DefaultSessions утренняя и дневная смены приема
var DefaultSessions = []Session{
	{Open: "08:00", Close: "12:00"},
	{Open: "14:00", Close: "18:00"},
}

// defaultOccupied занятые слоты; одинаковы для любой даты
var defaultOccupied = []types.TimeString{"09:00", "10:30", "15:00", "16:30"}

// Repository статическое расписание слотов
type Repository struct {
	slots    []types.TimeString
	occupied map[types.TimeString]struct{}
}

// NewRepository создает расписание со встроенными данными
func NewRepository() *Repository {
	repo, err := NewRepositoryWithSessions(DefaultSessions, DefaultSlotMinutes, defaultOccupied)
	if err != nil {
		panic(err)
	}
	return repo
}

// NewRepositoryWithSessions создает расписание из смен приема
func NewRepositoryWithSessions(sessions []Session, stepMinutes int, occupied []types.TimeString) (*Repository, error) {
	slots, err := GenerateSlots(sessions, stepMinutes)
	if err != nil {
		return nil, err
	}
	return NewRepositoryWithSlots(slots, occupied), nil
}

// NewRepositoryWithSlots создает расписание с произвольными слотами (для тестов)
func NewRepositoryWithSlots(slots []types.TimeString, occupied []types.TimeString) *Repository {
	set := make(map[types.TimeString]struct{}, len(occupied))
	for _, s := range occupied {
		set[s] = struct{}{}
	}
	return &Repository{
		slots:    append([]types.TimeString(nil), slots...),
		occupied: set,
	}
}

// ListSlots возвращает все слоты дня в порядке возрастания
// Дата не влияет на результат
func (r *Repository) ListSlots(_ time.Time) []types.TimeString {
	return append([]types.TimeString(nil), r.slots...)
}

// HasSlot проверяет, что слот входит в расписание
func (r *Repository) HasSlot(_ time.Time, slot types.TimeString) bool {
	for _, s := range r.slots {
		if s == slot {
			return true
		}
	}
	return false
}

// IsOccupied проверяет, занят ли слот
func (r *Repository) IsOccupied(_ time.Time, slot types.TimeString) bool {
	_, ok := r.occupied[slot]
	return ok
}

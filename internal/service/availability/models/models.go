package models

import (
	"time"

	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
	"github.com/m04kA/SMC-ScreeningWizard/pkg/types"
)

// Calendar сетка месяца для выбора даты
type Calendar struct {
	Month     domain.YearMonth
	MonthName string // "Junio"
	Prev      domain.YearMonth
	Next      domain.YearMonth
	Weekdays  []string
	Cells     []Day
}

// Day ячейка календаря; Blank = пустая ячейка до первого дня месяца
type Day struct {
	Blank    bool
	Date     time.Time
	IsPast   bool
	IsToday  bool
	Selected bool
}

// Slot временной слот на дату
type Slot struct {
	Time     types.TimeString
	Occupied bool
}

// DaySlots слоты на конкретную дату
type DaySlots struct {
	Date      time.Time
	Slots     []Slot
	Available []types.TimeString
}

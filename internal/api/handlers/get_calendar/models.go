package get_calendar

import (
	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
	availabilityModels "github.com/m04kA/SMC-ScreeningWizard/internal/service/availability/models"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Month     string        `json:"month"` // YYYY-MM
	MonthName string        `json:"monthName"`
	Year      int           `json:"year"`
	Prev      string        `json:"prev"`
	Next      string        `json:"next"`
	Weekdays  []string      `json:"weekdays"`
	Days      []DayResponse `json:"days"`
}

// DayResponse ячейка календаря; пустые ячейки содержат только blank=true
type DayResponse struct {
	Blank      bool   `json:"blank"`
	Date       string `json:"date,omitempty"`
	Day        int    `json:"day,omitempty"`
	IsPast     bool   `json:"isPast"`
	IsToday    bool   `json:"isToday"`
	Selected   bool   `json:"selected"`
	Selectable bool   `json:"selectable"`
}

// FromCalendar конвертирует календарь сервиса в HTTP response
func FromCalendar(cal *availabilityModels.Calendar) *CalendarResponse {
	days := make([]DayResponse, len(cal.Cells))
	for i, cell := range cal.Cells {
		if cell.Blank {
			days[i] = DayResponse{Blank: true}
			continue
		}
		days[i] = DayResponse{
			Date:       cell.Date.Format(domain.DateFormat),
			Day:        cell.Date.Day(),
			IsPast:     cell.IsPast,
			IsToday:    cell.IsToday,
			Selected:   cell.Selected,
			Selectable: !cell.IsPast,
		}
	}

	return &CalendarResponse{
		Month:     cal.Month.String(),
		MonthName: cal.MonthName,
		Year:      cal.Month.Year,
		Prev:      cal.Prev.String(),
		Next:      cal.Next.String(),
		Weekdays:  cal.Weekdays,
		Days:      days,
	}
}

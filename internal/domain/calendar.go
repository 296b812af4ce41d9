package domain

import (
	"fmt"
	"time"
)

// YearMonth identifies a calendar month
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth returns the month containing t
func NewYearMonth(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses "YYYY-MM"
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(MonthFormat, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("parse month %q: %w", s, err)
	}
	return NewYearMonth(t), nil
}

// String returns "YYYY-MM"
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Next returns the following month (no upper bound)
func (ym YearMonth) Next() YearMonth {
	return ym.add(1)
}

// Prev returns the previous month (no lower bound)
func (ym YearMonth) Prev() YearMonth {
	return ym.add(-1)
}

func (ym YearMonth) add(months int) YearMonth {
	t := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	return NewYearMonth(t)
}

// FirstDay returns midnight of day 1 in loc
func (ym YearMonth) FirstDay(loc *time.Location) time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, loc)
}

// DaysIn returns the number of days in the month
func (ym YearMonth) DaysIn() int {
	// day 0 of the next month is the last day of this one
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CalendarCell is either a blank leading cell or a day of the month
type CalendarCell struct {
	Blank bool
	Date  time.Time
}

// CalendarGrid returns the month grid: one blank per weekday offset of day 1
// (weeks start on Sunday), followed by one cell per day
func CalendarGrid(ym YearMonth, loc *time.Location) []CalendarCell {
	if loc == nil {
		loc = time.UTC
	}

	first := ym.FirstDay(loc)
	offset := int(first.Weekday())
	days := ym.DaysIn()

	cells := make([]CalendarCell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, CalendarCell{Blank: true})
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, CalendarCell{Date: time.Date(ym.Year, ym.Month, day, 0, 0, 0, 0, loc)})
	}

	return cells
}

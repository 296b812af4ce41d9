package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarGrid(t *testing.T) {
	tests := []struct {
		name       string
		ym         YearMonth
		wantBlanks int
		wantDays   int
	}{
		{name: "june 2025 starts on sunday", ym: YearMonth{2025, time.June}, wantBlanks: 0, wantDays: 30},
		{name: "february 2025 starts on saturday", ym: YearMonth{2025, time.February}, wantBlanks: 6, wantDays: 28},
		{name: "leap february", ym: YearMonth{2024, time.February}, wantBlanks: 4, wantDays: 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := CalendarGrid(tt.ym, time.UTC)
			require.Len(t, cells, tt.wantBlanks+tt.wantDays)

			for i := 0; i < tt.wantBlanks; i++ {
				assert.True(t, cells[i].Blank)
			}

			first := cells[tt.wantBlanks]
			assert.False(t, first.Blank)
			assert.Equal(t, 1, first.Date.Day())
			assert.Equal(t, tt.wantBlanks, int(first.Date.Weekday()))

			last := cells[len(cells)-1]
			assert.Equal(t, tt.wantDays, last.Date.Day())
			assert.Equal(t, tt.ym.Month, last.Date.Month())
		})
	}
}

func TestCalendarGrid_UsesLocation(t *testing.T) {
	loc := time.FixedZone("COT", -5*60*60)
	cells := CalendarGrid(YearMonth{2025, time.June}, loc)
	assert.Equal(t, loc, cells[0].Date.Location())

	assert.NotEmpty(t, CalendarGrid(YearMonth{2025, time.June}, nil))
}

func TestYearMonth_Navigation(t *testing.T) {
	ym := YearMonth{2025, time.December}
	assert.Equal(t, YearMonth{2026, time.January}, ym.Next())
	assert.Equal(t, YearMonth{2025, time.November}, ym.Prev())
	assert.Equal(t, YearMonth{2024, time.December}, YearMonth{2025, time.January}.Prev())

	far := YearMonth{1, time.January}
	for i := 0; i < 24; i++ {
		far = far.Prev()
	}
	assert.Equal(t, YearMonth{-1, time.January}, far, "navigation is unbounded")
}

func TestParseYearMonth(t *testing.T) {
	ym, err := ParseYearMonth("2025-06")
	require.NoError(t, err)
	assert.Equal(t, YearMonth{2025, time.June}, ym)
	assert.Equal(t, "2025-06", ym.String())
	assert.Equal(t, 30, ym.DaysIn())

	_, err = ParseYearMonth("2025-13")
	assert.Error(t, err)
}

func TestLocale(t *testing.T) {
	assert.Equal(t, "martes, 10 de junio de 2025", FormatLongDateES(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "sábado, 1 de febrero de 2025", FormatLongDateES(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Junio", MonthNameES(time.June))
	assert.Equal(t, "Septiembre", MonthNameES(time.September))
	assert.Empty(t, MonthNameES(time.Month(13)))
}

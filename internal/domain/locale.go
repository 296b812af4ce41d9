package domain

import (
	"fmt"
	"time"
)

var monthNamesES = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var weekdayNamesES = [7]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

// WeekdayShortNamesES calendar header, week starts on Sunday
var WeekdayShortNamesES = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// MonthNameES returns the capitalized Spanish month name ("Junio")
func MonthNameES(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	name := monthNamesES[m-1]
	return capitalize(name)
}

// FormatLongDateES formats a date as "martes, 10 de junio de 2025"
func FormatLongDateES(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		weekdayNamesES[t.Weekday()], t.Day(), monthNamesES[t.Month()-1], t.Year())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}

package domain

import "fmt"

// CatalogEntry represents a bookable test or package (static, read-only)
type CatalogEntry struct {
	ID              string
	Type            AppointmentType
	Title           string
	DurationMinutes int
	Requirements    string
	Tests           []string    // included sub-tests, packages only
	Route           []RouteStep // ordered route through the clinic, packages only
}

// RouteStep represents one stop of a package route
type RouteStep struct {
	Order           int
	Name            string
	DurationMinutes int
}

// IsPackage returns true if the entry is a package
func (e *CatalogEntry) IsPackage() bool {
	return e.Type == AppointmentTypePackage
}

// DurationLabel returns the human-readable duration of the entry
func (e *CatalogEntry) DurationLabel() string {
	return FormatDuration(e.DurationMinutes)
}

// RouteDurationMinutes returns the total duration of the route steps
func (e *CatalogEntry) RouteDurationMinutes() int {
	total := 0
	for _, step := range e.Route {
		total += step.DurationMinutes
	}
	return total
}

// FormatDuration formats minutes as "N minutos" or, for whole hours, "N hora(s)"
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return FallbackDurationLabel
	}
	if minutes >= 60 && minutes%60 == 0 {
		hours := minutes / 60
		if hours == 1 {
			return "1 hora"
		}
		return fmt.Sprintf("%d horas", hours)
	}
	return fmt.Sprintf("%d minutos", minutes)
}

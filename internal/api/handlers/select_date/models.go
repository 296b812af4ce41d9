package select_date

import (
	"time"

	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
)

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"` // "2025-06-10"
}

// ParseDate разбирает дату в часовом поясе клиники
func (r *SelectDateRequest) ParseDate(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, r.Date, loc)
}

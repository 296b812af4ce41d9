package select_time

import "github.com/m04kA/SMC-ScreeningWizard/pkg/types"

// SelectTimeRequest HTTP request model
type SelectTimeRequest struct {
	Time string `json:"time"` // "10:00"
}

// ParseTime разбирает и нормализует время слота
func (r *SelectTimeRequest) ParseTime() (types.TimeString, error) {
	return types.NewTimeStringFromString(r.Time)
}

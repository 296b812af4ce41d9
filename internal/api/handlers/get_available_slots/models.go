package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
	availabilityModels "github.com/m04kA/SMC-ScreeningWizard/internal/service/availability/models"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string          `json:"date"`
	DateLabel string          `json:"dateLabel"`
	IsPast    bool            `json:"isPast"`
	Slots     []AvailableSlot `json:"slots"`
	Available []string        `json:"available"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time      string `json:"time"`
	Occupied  bool   `json:"occupied"`
	Available bool   `json:"available"`
}

// FromServiceResponse конвертирует слоты сервиса в HTTP response
// Для прошедшей даты ни один слот не доступен
func FromServiceResponse(day *availabilityModels.DaySlots, isPast bool) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(day.Slots))
	for i, slot := range day.Slots {
		slots[i] = AvailableSlot{
			Time:      slot.Time.String(),
			Occupied:  slot.Occupied,
			Available: !slot.Occupied && !isPast,
		}
	}

	available := make([]string, 0, len(day.Available))
	if !isPast {
		for _, slot := range day.Available {
			available = append(available, slot.String())
		}
	}

	return &AvailableSlotsResponse{
		Date:      day.Date.Format(domain.DateFormat),
		DateLabel: domain.FormatLongDateES(day.Date),
		IsPast:    isPast,
		Slots:     slots,
		Available: available,
	}
}

// ParseDate разбирает дату из query параметра в часовом поясе клиники
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, raw, loc)
}

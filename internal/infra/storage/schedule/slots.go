package schedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScreeningWizard/pkg/types"
)

// ErrInvalidSession возвращается для некорректной смены приема
var ErrInvalidSession = errors.New("schedule: invalid session")

// Session смена приема [Open, Close)
type Session struct {
	Open  types.TimeString
	Close types.TimeString
}

// GenerateSlots генерирует слоты каждой смены с фиксированным шагом
// Слот, который заканчивается позже закрытия смены, не включается
func GenerateSlots(sessions []Session, stepMinutes int) ([]types.TimeString, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %d", ErrInvalidSession, stepMinutes)
	}

	slots := make([]types.TimeString, 0)
	var prevClose types.TimeString

	for _, session := range sessions {
		if !session.Open.IsBefore(session.Close) {
			return nil, fmt.Errorf("%w: %s-%s", ErrInvalidSession, session.Open, session.Close)
		}
		// смены должны идти по порядку и не пересекаться
		if !prevClose.IsZero() && session.Open.IsBefore(prevClose) {
			return nil, fmt.Errorf("%w: %s-%s overlaps previous session", ErrInvalidSession, session.Open, session.Close)
		}

		current := session.Open
		for current.IsBefore(session.Close) {
			end, err := current.AddMinutes(stepMinutes)
			if err != nil {
				return nil, err
			}
			if end.IsAfter(session.Close) {
				break
			}

			slots = append(slots, current)
			current = end
		}

		prevClose = session.Close
	}

	return slots, nil
}

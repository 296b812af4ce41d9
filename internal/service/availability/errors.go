package availability

import "errors"

var (
	// ErrDateInPast возвращается, когда дата раньше сегодняшней
	ErrDateInPast = errors.New("availability: date is in the past")

	// ErrUnknownSlot возвращается, когда время не входит в расписание
	ErrUnknownSlot = errors.New("availability: unknown time slot")

	// ErrSlotOccupied возвращается, когда слот уже занят
	ErrSlotOccupied = errors.New("availability: time slot is occupied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input data")
)

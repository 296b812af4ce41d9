package wizard

import "errors"

// Ошибки отклоненного выбора. Невыполненные переходы (шаг не пройден,
// запись уже подтверждена) ошибками не являются: результат Applied=false
var (
	// ErrInvalidAppointmentType возвращается для неизвестного типа записи
	ErrInvalidAppointmentType = errors.New("wizard: invalid appointment type")

	// ErrTypeNotSelected возвращается при выборе области до выбора типа
	ErrTypeNotSelected = errors.New("wizard: appointment type is not selected")

	// ErrAreaNotInCatalog возвращается, когда область не входит в каталог выбранного типа
	ErrAreaNotInCatalog = errors.New("wizard: area is not in the catalog of the selected type")

	// ErrPatientNotFound возвращается, когда пациент не найден в справочнике
	ErrPatientNotFound = errors.New("wizard: patient not found")

	// ErrInvalidPatient возвращается при некорректных данных нового пациента
	ErrInvalidPatient = errors.New("wizard: invalid patient data")

	// ErrDateInPast возвращается при выборе прошедшей даты
	ErrDateInPast = errors.New("wizard: date is in the past")

	// ErrDateNotSelected возвращается при выборе времени до выбора даты
	ErrDateNotSelected = errors.New("wizard: date is not selected")

	// ErrUnknownSlot возвращается, когда время не входит в расписание
	ErrUnknownSlot = errors.New("wizard: unknown time slot")

	// ErrSlotOccupied возвращается при выборе занятого слота
	ErrSlotOccupied = errors.New("wizard: time slot is occupied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("wizard: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizard: internal error")
)

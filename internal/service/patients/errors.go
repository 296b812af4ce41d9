package patients

import "errors"

var (
	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("patient not found")

	// ErrInvalidInput возвращается при некорректных данных формы нового пациента
	ErrInvalidInput = errors.New("invalid patient data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("patients service: internal error")
)

// FieldError ошибка валидации конкретного поля формы
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrInvalidInput)
func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

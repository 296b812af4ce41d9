package patients

import (
	"net/mail"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/patients/models"
)

// validateCreateRequest проверяет форму и возвращает нормализованные значения
func validateCreateRequest(req *models.CreatePatientRequest) (*domain.Patient, error) {
	name := strings.Join(strings.Fields(req.Name), " ")
	if name == "" {
		return nil, &FieldError{Field: "name", Message: "name is required"}
	}
	if utf8.RuneCountInString(name) > domain.MaxPatientNameLength {
		return nil, &FieldError{Field: "name", Message: "name is too long"}
	}

	phone := strings.TrimSpace(req.Phone)
	if err := validatePhone(phone); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	age, err := parseAge(req.Age)
	if err != nil {
		return nil, err
	}

	return &domain.Patient{
		Name:  name,
		Phone: phone,
		Email: email,
		Age:   age,
	}, nil
}

// validatePhone допускает цифры, пробелы, '+', '-', скобки; '+' только первым символом
func validatePhone(phone string) error {
	if phone == "" {
		return &FieldError{Field: "phone", Message: "phone is required"}
	}

	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return &FieldError{Field: "phone", Message: "phone contains invalid characters"}
		}
	}

	if digits < domain.MinPhoneDigits || digits > domain.MaxPhoneDigits {
		return &FieldError{Field: "phone", Message: "phone must contain 7 to 15 digits"}
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return &FieldError{Field: "email", Message: "email is required"}
	}
	if len(email) > domain.MaxPatientEmailLength {
		return &FieldError{Field: "email", Message: "email is too long"}
	}

	addr, err := mail.ParseAddress(email)
	// ParseAddress принимает "Name <a@b>", в форме нужен только сам адрес
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return &FieldError{Field: "email", Message: "email is malformed"}
	}
	return nil
}

func parseAge(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &FieldError{Field: "age", Message: "age is required"}
	}

	age, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: "age", Message: "age must be a whole number"}
	}
	if age < domain.MinPatientAge || age > domain.MaxPatientAge {
		return 0, &FieldError{Field: "age", Message: "age must be between 0 and 150"}
	}
	return age, nil
}

package create_patient

import (
	"bytes"
	"encoding/json"
	"strings"

	patientModels "github.com/m04kA/SMC-ScreeningWizard/internal/service/patients/models"
)

// CreatePatientRequest HTTP request model, поля формы "Nuevo paciente"
type CreatePatientRequest struct {
	Name   string    `json:"name"`
	Cedula string    `json:"cedula"` // принимается вместе с формой, в записи пациента не хранится
	Phone  string    `json:"phone"`
	Email  string    `json:"email"`
	Age    FormValue `json:"age"`
}

// FormValue текст поля формы; принимает JSON строку или число
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = FormValue(n.String())
	return nil
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreatePatientRequest) ToServiceRequest() *patientModels.CreatePatientRequest {
	return &patientModels.CreatePatientRequest{
		Name:  r.Name,
		Phone: r.Phone,
		Email: strings.TrimSpace(r.Email),
		Age:   string(r.Age),
	}
}

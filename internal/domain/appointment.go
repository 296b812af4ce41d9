package domain

// AppointmentType represents the kind of booking; the zero value means "not selected"
type AppointmentType string

const (
	AppointmentTypeIndividual AppointmentType = "individual"
	AppointmentTypePackage    AppointmentType = "package"
)

// AppointmentTypes список типов в порядке отображения
var AppointmentTypes = []AppointmentType{
	AppointmentTypeIndividual,
	AppointmentTypePackage,
}

// IsValid returns true for a known appointment type
func (t AppointmentType) IsValid() bool {
	return t == AppointmentTypeIndividual || t == AppointmentTypePackage
}

// IsSet returns true if a type has been chosen
func (t AppointmentType) IsSet() bool {
	return t != ""
}

// Title returns the user-facing name of the type
func (t AppointmentType) Title() string {
	switch t {
	case AppointmentTypeIndividual:
		return "Prueba Individual"
	case AppointmentTypePackage:
		return "Paquete de Pruebas"
	default:
		return ""
	}
}

// ParseAppointmentType converts a raw string into a known AppointmentType
func ParseAppointmentType(s string) (AppointmentType, bool) {
	t := AppointmentType(s)
	if !t.IsValid() {
		return "", false
	}
	return t, true
}

// AppointmentTypeInfo descriptive card of an appointment type
type AppointmentTypeInfo struct {
	Type        AppointmentType
	Title       string
	Description string
	Features    []string
}

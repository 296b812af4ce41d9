package catalog

import "github.com/m04kA/SMC-ScreeningWizard/internal/domain"

var appointmentTypes = []domain.AppointmentTypeInfo{
	{
		Type:        domain.AppointmentTypeIndividual,
		Title:       "Prueba Individual",
		Description: "Selecciona una prueba específica de tamizaje",
		Features:    []string{"Tiempo optimizado", "Costo específico", "Resultados rápidos"},
	},
	{
		Type:        domain.AppointmentTypePackage,
		Title:       "Paquete de Pruebas",
		Description: "Combina múltiples pruebas con descuento especial",
		Features:    []string{"Ahorro hasta 30%", "Evaluación completa", "Seguimiento integrado"},
	},
}

var individualTests = []domain.CatalogEntry{
	{
		ID:              "vision",
		Type:            domain.AppointmentTypeIndividual,
		Title:           "Examen de Visión",
		DurationMinutes: 15,
		Requirements:    "Sin lentes de contacto",
	},
	{
		ID:              "hearing",
		Type:            domain.AppointmentTypeIndividual,
		Title:           "Audiometría",
		DurationMinutes: 20,
		Requirements:    "Oídos limpios",
	},
	{
		ID:              "cardio",
		Type:            domain.AppointmentTypeIndividual,
		Title:           "Electrocardiograma",
		DurationMinutes: 10,
		Requirements:    "Ropa cómoda",
	},
	{
		ID:              "neuro",
		Type:            domain.AppointmentTypeIndividual,
		Title:           "Evaluación Neurológica",
		DurationMinutes: 30,
		Requirements:    "Descanso previo",
	},
}

var packages = []domain.CatalogEntry{
	{
		ID:              "basic",
		Type:            domain.AppointmentTypePackage,
		Title:           "Paquete Básico",
		DurationMinutes: 45,
		Requirements:    "Ayuno 8 horas",
		Tests:           []string{"Visión", "Audición", "Presión arterial"},
		Route: []domain.RouteStep{
			{Order: 1, Name: "Visión", DurationMinutes: 15},
			{Order: 2, Name: "Audición", DurationMinutes: 20},
			{Order: 3, Name: "Presión arterial", DurationMinutes: 10},
		},
	},
	{
		ID:              "complete",
		Type:            domain.AppointmentTypePackage,
		Title:           "Paquete Completo",
		DurationMinutes: 90,
		Requirements:    "Ayuno 12 horas",
		Tests:           []string{"Visión", "Audición", "ECG", "Laboratorio", "Rayos X"},
		Route: []domain.RouteStep{
			{Order: 1, Name: "Visión", DurationMinutes: 15},
			{Order: 2, Name: "Audición", DurationMinutes: 20},
			{Order: 3, Name: "ECG", DurationMinutes: 10},
			{Order: 4, Name: "Laboratorio", DurationMinutes: 30},
			{Order: 5, Name: "Rayos X", DurationMinutes: 15},
		},
	},
	{
		ID:              "executive",
		Type:            domain.AppointmentTypePackage,
		Title:           "Paquete Ejecutivo",
		DurationMinutes: 120,
		Requirements:    "Ayuno 12 horas",
		Tests:           []string{"Examen completo", "Ecocardiograma", "Prueba de esfuerzo", "Laboratorio especializado"},
		Route: []domain.RouteStep{
			{Order: 1, Name: "Examen completo", DurationMinutes: 45},
			{Order: 2, Name: "Ecocardiograma", DurationMinutes: 30},
			{Order: 3, Name: "Prueba de esfuerzo", DurationMinutes: 20},
			{Order: 4, Name: "Laboratorio especializado", DurationMinutes: 15},
		},
	},
}

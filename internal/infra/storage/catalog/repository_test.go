package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
)

func TestRepository_GetByID(t *testing.T) {
	repo := NewRepository()

	tests := []struct {
		name      string
		typ       domain.AppointmentType
		id        string
		wantTitle string
		wantErr   error
	}{
		{name: "individual test", typ: domain.AppointmentTypeIndividual, id: "vision", wantTitle: "Examen de Visión"},
		{name: "package", typ: domain.AppointmentTypePackage, id: "executive", wantTitle: "Paquete Ejecutivo"},
		{name: "package id under individual", typ: domain.AppointmentTypeIndividual, id: "basic", wantErr: ErrEntryNotFound},
		{name: "unknown id", typ: domain.AppointmentTypePackage, id: "premium", wantErr: ErrEntryNotFound},
		{name: "unset type", typ: "", id: "vision", wantErr: ErrUnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := repo.GetByID(tt.typ, tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, entry)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, entry.Title)
			assert.Equal(t, tt.typ, entry.Type)
		})
	}
}

func TestRepository_ListByType(t *testing.T) {
	repo := NewRepository()

	individual, err := repo.ListByType(domain.AppointmentTypeIndividual)
	require.NoError(t, err)
	require.Len(t, individual, 4)
	assert.Equal(t, []string{"vision", "hearing", "cardio", "neuro"}, ids(individual))

	pkgs, err := repo.ListByType(domain.AppointmentTypePackage)
	require.NoError(t, err)
	assert.Equal(t, []string{"basic", "complete", "executive"}, ids(pkgs))

	for _, p := range pkgs {
		assert.Len(t, p.Route, len(p.Tests), "route of %s follows its tests", p.ID)
	}

	_, err = repo.ListByType("group")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestRepository_ReturnsCopies(t *testing.T) {
	repo := NewRepository()

	entry, err := repo.GetByID(domain.AppointmentTypePackage, "basic")
	require.NoError(t, err)
	entry.Tests[0] = "mutated"
	entry.Route[0].Name = "mutated"

	again, err := repo.GetByID(domain.AppointmentTypePackage, "basic")
	require.NoError(t, err)
	assert.Equal(t, "Visión", again.Tests[0])
	assert.Equal(t, "Visión", again.Route[0].Name)

	types := repo.ListAppointmentTypes()
	require.Len(t, types, 2)
	types[0].Features[0] = "mutated"
	assert.Equal(t, "Tiempo optimizado", repo.ListAppointmentTypes()[0].Features[0])
}

func ids(entries []domain.CatalogEntry) []string {
	result := make([]string, len(entries))
	for i, e := range entries {
		result[i] = e.ID
	}
	return result
}

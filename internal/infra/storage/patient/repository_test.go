package patient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScreeningWizard/internal/domain"
)

func TestRepository_Search(t *testing.T) {
	repo := NewRepository()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "empty query returns all in order", query: "", wantIDs: []string{"1", "2", "3"}},
		{name: "name case-insensitive", query: "maría", wantIDs: []string{"1"}},
		{name: "name upper case", query: "MARÍA", wantIDs: []string{"1"}},
		{name: "phone raw substring", query: "301 234", wantIDs: []string{"2"}},
		{name: "common phone prefix", query: "+57 30", wantIDs: []string{"1", "2", "3"}},
		{name: "email", query: "ANA.MARTINEZ", wantIDs: []string{"3"}},
		{name: "shared substring keeps fixture order", query: "ar", wantIDs: []string{"1", "2", "3"}},
		{name: "no match", query: "pedro", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repo.Search(tt.query)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRepository_SearchMaria(t *testing.T) {
	got := NewRepository().Search("maría")

	require.Len(t, got, 1)
	assert.Equal(t, "María González López", got[0].Name)
}

func TestRepository_GetByID(t *testing.T) {
	repo := NewRepository()

	p, err := repo.GetByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Carlos Andrés Ruiz", p.Name)
	assert.Equal(t, 28, p.Age)

	p.Name = "mutated"
	again, err := repo.GetByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Carlos Andrés Ruiz", again.Name)

	_, err = repo.GetByID("42")
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestNewRepositoryWithPatients(t *testing.T) {
	repo := NewRepositoryWithPatients([]domain.Patient{{ID: "x", Name: "Luis"}})
	assert.Len(t, repo.Search(""), 1)
}

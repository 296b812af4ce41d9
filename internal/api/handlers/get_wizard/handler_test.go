package get_wizard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers"
	"github.com/m04kA/SMC-ScreeningWizard/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-ScreeningWizard/internal/infra/storage/patient"
	"github.com/m04kA/SMC-ScreeningWizard/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/availability"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/patients"
	"github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard"
	"github.com/m04kA/SMC-ScreeningWizard/pkg/logger"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newWizard() *wizard.Service {
	log := logger.NewNop()
	clock := fixedClock{now: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)}
	return wizard.NewService(
		catalog.NewRepository(),
		availability.NewService(schedule.NewRepository(), clock, log),
		patients.NewService(patient.NewRepository(), log),
		log,
	)
}

func getState(t *testing.T, h *Handler) handlers.WizardStateResponse {
	t.Helper()

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/wizard", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var resp handlers.WizardStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandler_Handle_InitialState(t *testing.T) {
	h := NewHandler(newWizard(), logger.NewNop())

	resp := getState(t, h)
	assert.Equal(t, 0, resp.Step)
	assert.Equal(t, "type_selection", resp.StepName)
	assert.Equal(t, "Tipo", resp.StepTitle)
	assert.Equal(t, 1, resp.StepNumber)
	assert.Equal(t, 5, resp.TotalSteps)
	assert.Len(t, resp.StepTitles, 5)
	assert.False(t, resp.CanAdvance)
	assert.False(t, resp.CanRetreat)
	assert.False(t, resp.CanConfirm)
	assert.Nil(t, resp.Selection.Patient)
	assert.Nil(t, resp.Selection.Date)
}

func TestHandler_Handle_ReflectsSelection(t *testing.T) {
	svc := newWizard()
	h := NewHandler(svc, logger.NewNop())

	_, err := svc.SelectType("individual")
	require.NoError(t, err)
	_, err = svc.SelectDate(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	resp := getState(t, h)
	assert.Equal(t, "individual", resp.Selection.AppointmentType)
	assert.Equal(t, "Prueba Individual", resp.Summary.TypeTitle)
	assert.True(t, resp.CanAdvance)
	require.NotNil(t, resp.Selection.Date)
	assert.Equal(t, "2025-06-10", *resp.Selection.Date)
}

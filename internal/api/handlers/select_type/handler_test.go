package select_type

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
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

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
		wantType   string
	}{
		{name: "malformed body", body: `{"type":`, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidRequestBody},
		{name: "unknown field", body: `{"kind":"individual"}`, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidRequestBody},
		{name: "unknown type", body: `{"type":"group"}`, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidType},
		{name: "empty type", body: `{"type":""}`, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidType},
		{name: "individual", body: `{"type":"individual"}`, wantStatus: http.StatusOK, wantType: "individual"},
		{name: "package with spaces", body: `{"type":" package "}`, wantStatus: http.StatusOK, wantType: "package"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newWizard()
			h := NewHandler(svc, logger.NewNop())

			req := httptest.NewRequest(http.MethodPut, "/api/v1/wizard/type", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantMsg != "" {
				var body handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantMsg, body.Message)
				assert.False(t, svc.State().AppointmentType.IsSet())
				return
			}

			var body handlers.TransitionResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.True(t, body.Applied)
			assert.Equal(t, tt.wantType, body.State.Selection.AppointmentType)
			assert.True(t, body.State.CanAdvance)
		})
	}
}

func TestHandler_Handle_SwitchReturnsToAreaStep(t *testing.T) {
	svc := newWizard()
	h := NewHandler(svc, logger.NewNop())

	_, err := svc.SelectType("individual")
	require.NoError(t, err)
	require.True(t, svc.Advance().Applied)
	_, err = svc.SelectArea("vision")
	require.NoError(t, err)
	require.True(t, svc.Advance().Applied)
	_, err = svc.SelectPatient("1")
	require.NoError(t, err)
	require.True(t, svc.Advance().Applied)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/wizard/type", strings.NewReader(`{"type":"package"}`))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body handlers.TransitionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Applied)
	assert.Equal(t, 1, body.State.Step)
	assert.Empty(t, body.State.Selection.AreaID)
	assert.False(t, body.State.CanAdvance)
	require.NotNil(t, body.State.Selection.Patient)
	assert.Equal(t, "1", body.State.Selection.Patient.ID)
}

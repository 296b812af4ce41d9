package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScreeningWizard/pkg/types"
)

var testPatient = Patient{
	ID:    "1",
	Name:  "María González López",
	Phone: "+57 300 123 4567",
	Email: "maria.gonzalez@email.com",
	Age:   34,
}

func testDate() time.Time {
	return time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
}

// completeAt returns a selection with every field set, positioned at step
func completeAt(step Step) Selection {
	d := testDate()
	p := testPatient
	return Selection{
		Step:            step,
		AppointmentType: AppointmentTypeIndividual,
		AreaID:          "vision",
		Patient:         &p,
		Date:            &d,
		Time:            "09:30",
	}
}

func TestSelection_ZeroValueIsInitialState(t *testing.T) {
	var s Selection

	assert.Equal(t, StepTypeSelection, s.Step)
	assert.False(t, s.AppointmentType.IsSet())
	assert.Empty(t, s.AreaID)
	assert.Nil(t, s.Patient)
	assert.Nil(t, s.Date)
	assert.True(t, s.Time.IsZero())
	assert.False(t, s.Confirmed)
	assert.False(t, s.CanAdvance())
	assert.False(t, s.CanRetreat())
}

func TestSelection_CanAdvance(t *testing.T) {
	d := testDate()
	p := testPatient

	tests := []struct {
		name string
		sel  Selection
		want bool
	}{
		{name: "step 0 without type", sel: Selection{}, want: false},
		{name: "step 0 with type", sel: Selection{AppointmentType: AppointmentTypePackage}, want: true},
		{name: "step 1 without area", sel: Selection{Step: StepAreaSelection}, want: false},
		{name: "step 1 with area", sel: Selection{Step: StepAreaSelection, AreaID: "basic"}, want: true},
		{name: "step 2 without patient", sel: Selection{Step: StepPatientSelection}, want: false},
		{name: "step 2 with patient", sel: Selection{Step: StepPatientSelection, Patient: &p}, want: true},
		{name: "step 3 date only", sel: Selection{Step: StepAvailability, Date: &d}, want: false},
		{name: "step 3 time only", sel: Selection{Step: StepAvailability, Time: "09:30"}, want: false},
		{name: "step 3 date and time", sel: Selection{Step: StepAvailability, Date: &d, Time: "09:30"}, want: true},
		{name: "step 4 always", sel: Selection{Step: StepConfirmation}, want: true},
		{name: "out of range step", sel: Selection{Step: Step(7)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.CanAdvance())
		})
	}
}

func TestSelection_AdvanceChangesStepIffGateHolds(t *testing.T) {
	for step := StepTypeSelection; step < StepConfirmation; step++ {
		t.Run(step.String()+"/satisfied", func(t *testing.T) {
			s := completeAt(step)
			require.True(t, s.CanAdvance())
			assert.True(t, s.Advance())
			assert.Equal(t, step+1, s.Step)
		})

		t.Run(step.String()+"/empty", func(t *testing.T) {
			s := Selection{Step: step}
			require.False(t, s.CanAdvance())
			assert.False(t, s.Advance())
			assert.Equal(t, step, s.Step)
		})
	}
}

func TestSelection_AdvanceNeverExceedsLastStep(t *testing.T) {
	s := completeAt(StepConfirmation)

	assert.True(t, s.CanAdvance())
	assert.False(t, s.Advance())
	assert.Equal(t, StepConfirmation, s.Step)
}

func TestSelection_Retreat(t *testing.T) {
	var s Selection
	assert.False(t, s.Retreat(), "retreat from step 0 is a no-op")
	assert.Equal(t, StepTypeSelection, s.Step)

	for step := StepAreaSelection; step <= StepConfirmation; step++ {
		s := Selection{Step: step}
		assert.True(t, s.Retreat())
		assert.Equal(t, step-1, s.Step)
	}
}

func TestSelection_Scenario_GateBlocksWithoutArea(t *testing.T) {
	var s Selection

	require.True(t, s.SelectType(AppointmentTypeIndividual))
	require.True(t, s.Advance())
	assert.Equal(t, StepAreaSelection, s.Step)

	assert.False(t, s.Advance())
	assert.Equal(t, StepAreaSelection, s.Step)
}

func TestSelection_Scenario_FullBooking(t *testing.T) {
	var s Selection

	s.SelectType(AppointmentTypeIndividual)
	s.Advance()

	s.SelectArea("vision")
	s.Advance()
	assert.Equal(t, StepPatientSelection, s.Step)

	s.SelectPatient(testPatient)
	s.Advance()
	assert.Equal(t, StepAvailability, s.Step)

	s.SelectDate(time.Date(2025, 6, 10, 15, 45, 0, 0, time.UTC))
	s.SelectTime(types.TimeString("09:30"))
	s.Advance()
	assert.Equal(t, StepConfirmation, s.Step)

	assert.True(t, s.Confirm())
	assert.True(t, s.Confirmed)
	assert.Equal(t, testDate(), *s.Date, "date is truncated to midnight")
}

func TestSelection_ConfirmRequiresConfirmationStep(t *testing.T) {
	s := completeAt(StepAvailability)
	assert.False(t, s.Confirm())
	assert.False(t, s.Confirmed)

	incomplete := Selection{Step: StepConfirmation}
	assert.False(t, incomplete.Confirm())
	assert.False(t, incomplete.Confirmed)
}

func TestSelection_ConfirmedIsTerminal(t *testing.T) {
	s := completeAt(StepConfirmation)
	require.True(t, s.Confirm())
	before := s.Clone()

	assert.False(t, s.Confirm())
	assert.False(t, s.Advance())
	assert.False(t, s.Retreat())
	assert.False(t, s.SelectType(AppointmentTypePackage))
	assert.False(t, s.SelectArea("neuro"))
	assert.False(t, s.SelectPatient(Patient{ID: "2", Name: "Carlos Andrés Ruiz"}))
	assert.False(t, s.SelectDate(testDate().AddDate(0, 0, 1)))
	assert.False(t, s.SelectTime("11:00"))

	assert.Equal(t, before, s)

	s.Reset()
	assert.Equal(t, Selection{}, s)
}

func TestSelection_ResetRestoresInitialState(t *testing.T) {
	s := completeAt(StepAvailability)
	s.Reset()
	assert.Equal(t, Selection{}, s)

	confirmed := completeAt(StepConfirmation)
	confirmed.Confirm()
	confirmed.Reset()
	assert.Equal(t, Selection{}, confirmed)
}

// Switching the appointment type clears the area so a test id never remains
// selected under the package catalog (and vice versa).
func TestSelection_SelectType_ClearsAreaOnTypeChange(t *testing.T) {
	var s Selection
	s.SelectType(AppointmentTypeIndividual)
	s.SelectArea("vision")

	assert.True(t, s.SelectType(AppointmentTypeIndividual))
	assert.Equal(t, "vision", s.AreaID, "same type keeps the area")

	assert.True(t, s.SelectType(AppointmentTypePackage))
	assert.Empty(t, s.AreaID, "different type clears the area")
}

func TestSelection_SelectType_ReturnsToAreaStep(t *testing.T) {
	tests := []struct {
		name     string
		from     Step
		wantStep Step
	}{
		{name: "from type step", from: StepTypeSelection, wantStep: StepTypeSelection},
		{name: "from area step", from: StepAreaSelection, wantStep: StepAreaSelection},
		{name: "from patient step", from: StepPatientSelection, wantStep: StepAreaSelection},
		{name: "from availability step", from: StepAvailability, wantStep: StepAreaSelection},
		{name: "from confirmation step", from: StepConfirmation, wantStep: StepAreaSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := completeAt(tt.from)

			require.True(t, s.SelectType(AppointmentTypePackage))
			assert.Equal(t, tt.wantStep, s.Step)
			assert.Empty(t, s.AreaID)
			assert.NotNil(t, s.Patient)
			assert.NotNil(t, s.Date)
			assert.Equal(t, types.TimeString("09:30"), s.Time)
		})
	}
}

func TestSelection_SelectType_SameTypeKeepsStep(t *testing.T) {
	s := completeAt(StepAvailability)

	require.True(t, s.SelectType(AppointmentTypeIndividual))
	assert.Equal(t, StepAvailability, s.Step)
	assert.Equal(t, "vision", s.AreaID)
}

func TestSelection_SelectType_IgnoresUnknownType(t *testing.T) {
	var s Selection
	assert.False(t, s.SelectType(AppointmentType("home-visit")))
	assert.False(t, s.AppointmentType.IsSet())
}

func TestSelection_SelectArea_DoesNotCheckCatalog(t *testing.T) {
	var s Selection
	assert.True(t, s.SelectArea("anything"))
	assert.Equal(t, "anything", s.AreaID)
	assert.False(t, s.SelectArea(""))
	assert.Equal(t, "anything", s.AreaID)
}

func TestSelection_SelectDate_KeepsTime(t *testing.T) {
	s := completeAt(StepAvailability)
	s.SelectDate(testDate().AddDate(0, 0, 3))

	assert.Equal(t, types.TimeString("09:30"), s.Time)
	assert.Equal(t, 13, s.Date.Day())
}

func TestSelection_SelectPatient_ReplacesWholesale(t *testing.T) {
	var s Selection
	s.SelectPatient(testPatient)
	s.SelectPatient(Patient{ID: "2", Name: "Carlos Andrés Ruiz"})

	require.NotNil(t, s.Patient)
	assert.Equal(t, "2", s.Patient.ID)
	assert.Empty(t, s.Patient.Email)
}

func TestSelection_CloneIsDeep(t *testing.T) {
	s := completeAt(StepAvailability)
	c := s.Clone()

	c.Patient.Name = "changed"
	*c.Date = c.Date.AddDate(1, 0, 0)

	assert.Equal(t, "María González López", s.Patient.Name)
	assert.Equal(t, 2025, s.Date.Year())
}

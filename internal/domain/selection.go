package domain

import (
	"time"

	"github.com/m04kA/SMC-ScreeningWizard/pkg/types"
)

// Selection represents the in-progress booking of a wizard session.
//
// The zero value is the initial state: step 0, nothing selected, not confirmed.
// Mutators never fail; they return false when the action is ignored.
// Once Confirmed is true, only Reset changes the selection.
type Selection struct {
	Step            Step
	AppointmentType AppointmentType
	AreaID          string
	Patient         *Patient
	Date            *time.Time // date only, midnight in its location
	Time            types.TimeString
	Confirmed       bool
}

// CanAdvance returns true if the gating rule of the current step is satisfied
func (s *Selection) CanAdvance() bool {
	switch s.Step {
	case StepTypeSelection:
		return s.AppointmentType.IsSet()
	case StepAreaSelection:
		return s.AreaID != ""
	case StepPatientSelection:
		return s.Patient != nil
	case StepAvailability:
		return s.Date != nil && !s.Time.IsZero()
	case StepConfirmation:
		return true
	default:
		return false
	}
}

// CanRetreat returns true if there is a previous step to go back to
func (s *Selection) CanRetreat() bool {
	return !s.Confirmed && s.Step > FirstStep
}

// IsComplete returns true if all four selections are set
func (s *Selection) IsComplete() bool {
	return s.AppointmentType.IsSet() &&
		s.AreaID != "" &&
		s.Patient != nil &&
		s.Date != nil &&
		!s.Time.IsZero()
}

// Advance moves to the next step if the current step is satisfied
func (s *Selection) Advance() bool {
	if s.Confirmed || !s.CanAdvance() || s.Step >= LastStep {
		return false
	}
	s.Step++
	return true
}

// Retreat moves to the previous step
func (s *Selection) Retreat() bool {
	if !s.CanRetreat() {
		return false
	}
	s.Step--
	return true
}

// SelectType sets the appointment type.
// Area ids belong to the catalog of one type, so switching to a different type
// clears the area and moves the wizard back to the area step if it was past it.
// Patient, date and time are kept.
func (s *Selection) SelectType(t AppointmentType) bool {
	if s.Confirmed || !t.IsValid() {
		return false
	}
	if s.AppointmentType != t {
		s.AreaID = ""
		if s.Step > StepAreaSelection {
			s.Step = StepAreaSelection
		}
	}
	s.AppointmentType = t
	return true
}

// SelectArea sets the area (test or package id) without checking catalog membership
func (s *Selection) SelectArea(id string) bool {
	if s.Confirmed || id == "" {
		return false
	}
	s.AreaID = id
	return true
}

// SelectPatient replaces the patient
func (s *Selection) SelectPatient(p Patient) bool {
	if s.Confirmed {
		return false
	}
	s.Patient = &p
	return true
}

// SelectDate sets the date (truncated to midnight). The selected time is kept.
func (s *Selection) SelectDate(date time.Time) bool {
	if s.Confirmed || date.IsZero() {
		return false
	}
	d := DateOnly(date)
	s.Date = &d
	return true
}

// SelectTime sets the time slot. Occupancy is not checked here.
func (s *Selection) SelectTime(t types.TimeString) bool {
	if s.Confirmed || t.IsZero() {
		return false
	}
	s.Time = t
	return true
}

// Confirm finalizes the booking; allowed only on the confirmation step with all selections set
func (s *Selection) Confirm() bool {
	if s.Confirmed || s.Step != StepConfirmation || !s.IsComplete() {
		return false
	}
	s.Confirmed = true
	return true
}

// Reset restores the initial state
func (s *Selection) Reset() {
	*s = Selection{}
}

// Clone returns a deep copy safe to hand out as a snapshot
func (s *Selection) Clone() Selection {
	c := *s
	if s.Patient != nil {
		p := *s.Patient
		c.Patient = &p
	}
	if s.Date != nil {
		d := *s.Date
		c.Date = &d
	}
	return c
}

// DateOnly truncates t to midnight in its own location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

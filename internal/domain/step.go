package domain

// Step represents a wizard step index in [0, TotalSteps-1]
type Step int

const (
	StepTypeSelection Step = iota
	StepAreaSelection
	StepPatientSelection
	StepAvailability
	StepConfirmation
)

var stepNames = [TotalSteps]string{
	"type_selection",
	"area_selection",
	"patient_selection",
	"availability",
	"confirmation",
}

// IsValid returns true if the step is within the wizard range
func (s Step) IsValid() bool {
	return s >= FirstStep && s <= LastStep
}

// String returns the machine name of the step
func (s Step) String() string {
	if !s.IsValid() {
		return "unknown"
	}
	return stepNames[s]
}

// Title returns the user-facing step title
func (s Step) Title() string {
	if !s.IsValid() {
		return ""
	}
	return StepTitles[s]
}

// Number returns the 1-based position shown in the progress bar
func (s Step) Number() int {
	return int(s) + 1
}

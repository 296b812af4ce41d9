package select_patient

// SelectPatientRequest HTTP request model
type SelectPatientRequest struct {
	PatientID string `json:"patientId"`
}

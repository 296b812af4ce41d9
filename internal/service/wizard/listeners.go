package wizard

import "github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard/models"

// MetricsListener переводит события мастера в метрики
func MetricsListener(m MetricsObserver) Listener {
	return func(event models.Event) {
		m.ObserveTransition(string(event.Action), event.Applied)
		m.SetStep(int(event.To))
		if event.Action == models.ActionConfirm && event.Applied && event.State != nil {
			m.ObserveConfirmation(string(event.State.AppointmentType))
		}
	}
}

// LoggingListener пишет в лог подтвержденные записи
func LoggingListener(logger Logger) Listener {
	return func(event models.Event) {
		if event.Action != models.ActionConfirm || !event.Applied || event.State == nil {
			return
		}
		st := event.State
		patientID := ""
		if st.Patient != nil {
			patientID = st.Patient.ID
		}
		logger.Info("Booking confirmed: type=%s, area=%s, patient=%s, date=%s, time=%s",
			st.AppointmentType, st.AreaID, patientID, st.Summary.DateLabel, st.Time)
	}
}

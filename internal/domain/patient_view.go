package domain

// PatientView is the read-side composition of a patient, their latest
// vitals and their full alert log. It is computed fresh on every request
// and never stored.
type PatientView struct {
	Patient
	Vitals         VitalReading `json:"vitals"`
	VitalsRecorded bool         `json:"vitals_recorded"` // false = placeholder (no reading yet / unknown id)
	Alerts         []Alert      `json:"alerts"`
}

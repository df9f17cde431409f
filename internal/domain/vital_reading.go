package domain

import "time"

// VitalReading 生命体征快照
// Only the most recent submission per patient is retained; every ingest
// overwrites the previous one.
type VitalReading struct {
	PatientID     string    `json:"patient_id"`
	HeartRate     float64   `json:"heart_rate"`      // beats/min
	Temperature   float64   `json:"temperature"`     // °C
	BloodPressure float64   `json:"blood_pressure"`  // single scalar, matches upstream payloads
	Timestamp     time.Time `json:"timestamp"`
}

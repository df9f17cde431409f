package domain

import "time"

// Alert 报警记录
// Per-patient alert logs are append-only: once created an alert is never
// mutated or removed, and repeated triggers are not deduplicated.
type Alert struct {
	PatientID string    `json:"patient_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

package repository

import (
	"context"

	"vitalwatch/internal/domain"
)

// AlertsRepo 报警日志存储接口
// Logs are append-only per patient.
type AlertsRepo interface {
	// Init reserves an empty log for a newly registered patient.
	Init(ctx context.Context, patientID string) error

	// Append adds one alert to the patient's log.
	Append(ctx context.Context, alert domain.Alert) error

	// ListByPatient returns the full log in append order, or an empty
	// slice for unknown ids.
	ListByPatient(ctx context.Context, patientID string) ([]domain.Alert, error)
}

package repository

import (
	"context"

	"vitalwatch/internal/domain"
)

// VitalsRepo 生命体征存储接口
// At most one reading is retained per patient; Put overwrites.
type VitalsRepo interface {
	// Init reserves an empty slot for a newly registered patient.
	Init(ctx context.Context, patientID string) error

	// Put stores the reading, replacing any previous one for the patient.
	Put(ctx context.Context, reading domain.VitalReading) error

	// Latest returns the stored reading. ok is false when the patient has
	// never submitted vitals or the id is unknown; the two cases are not
	// distinguished.
	Latest(ctx context.Context, patientID string) (domain.VitalReading, bool, error)
}

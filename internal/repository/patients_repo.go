package repository

import (
	"context"

	"vitalwatch/internal/domain"
)

// PatientsRepo 病人存储接口
type PatientsRepo interface {
	// Create stores a new patient under a freshly generated id.
	Create(ctx context.Context, name string, age int) (domain.Patient, error)

	// List returns a snapshot of all registered patients in insertion order.
	// Callers must not depend on the ordering.
	List(ctx context.Context) ([]domain.Patient, error)
}

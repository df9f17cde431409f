package repository

import (
	"context"
	"sync"

	"vitalwatch/internal/domain"
)

// MemoryVitalsRepo holds the latest vital-sign snapshot per patient.
// A nil entry means the patient is registered but has no reading yet;
// lookups treat that the same as an unknown id.
type MemoryVitalsRepo struct {
	mu       sync.RWMutex
	readings map[string]*domain.VitalReading // patientID -> latest reading (nil = none yet)
}

func NewMemoryVitalsRepo() *MemoryVitalsRepo {
	return &MemoryVitalsRepo{
		readings: map[string]*domain.VitalReading{},
	}
}

func (r *MemoryVitalsRepo) Init(_ context.Context, patientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.readings[patientID]; !ok {
		r.readings[patientID] = nil
	}
	return nil
}

func (r *MemoryVitalsRepo) Put(_ context.Context, reading domain.VitalReading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// last write wins, no history
	cp := reading
	r.readings[reading.PatientID] = &cp
	return nil
}

func (r *MemoryVitalsRepo) Latest(_ context.Context, patientID string) (domain.VitalReading, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reading, ok := r.readings[patientID]
	if !ok || reading == nil {
		return domain.VitalReading{}, false, nil
	}
	return *reading, true, nil
}

package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"vitalwatch/internal/domain"
)

// MemoryPatientsRepo keeps the patient roster in memory.
// Patients are immutable after registration and never deleted, so the map
// only ever grows; the id slice preserves insertion order for listings.
type MemoryPatientsRepo struct {
	mu       sync.RWMutex
	patients map[string]domain.Patient // patientID -> Patient
	order    []string
}

func NewMemoryPatientsRepo() *MemoryPatientsRepo {
	return &MemoryPatientsRepo{
		patients: map[string]domain.Patient{},
	}
}

func (r *MemoryPatientsRepo) Create(_ context.Context, name string, age int) (domain.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := domain.Patient{
		ID:   uuid.New().String(),
		Name: name,
		Age:  age,
	}
	r.patients[p.ID] = p
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *MemoryPatientsRepo) List(_ context.Context) ([]domain.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.Patient, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.patients[id])
	}
	return all, nil
}

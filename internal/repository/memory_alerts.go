package repository

import (
	"context"
	"sync"

	"vitalwatch/internal/domain"
)

// MemoryAlertsRepo keeps per-patient alert logs in memory.
// Appends for the same patient are serialized under the store lock so
// concurrent triggers cannot lose updates.
type MemoryAlertsRepo struct {
	mu     sync.RWMutex
	alerts map[string][]domain.Alert // patientID -> alerts in append order
}

func NewMemoryAlertsRepo() *MemoryAlertsRepo {
	return &MemoryAlertsRepo{
		alerts: map[string][]domain.Alert{},
	}
}

func (r *MemoryAlertsRepo) Init(_ context.Context, patientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.alerts[patientID]; !ok {
		r.alerts[patientID] = []domain.Alert{}
	}
	return nil
}

func (r *MemoryAlertsRepo) Append(_ context.Context, alert domain.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alerts[alert.PatientID] = append(r.alerts[alert.PatientID], alert)
	return nil
}

func (r *MemoryAlertsRepo) ListByPatient(_ context.Context, patientID string) ([]domain.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := r.alerts[patientID]
	out := make([]domain.Alert, len(log))
	copy(out, log)
	return out, nil
}

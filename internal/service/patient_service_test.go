package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vitalwatch/internal/repository"
)

func TestRegister_CreatesPatientAndPlaceholders(t *testing.T) {
	logger := zap.NewNop()
	patientsRepo := repository.NewMemoryPatientsRepo()
	vitalsRepo := repository.NewMemoryVitalsRepo()
	alertsRepo := repository.NewMemoryAlertsRepo()
	auditor := &fakeAuditor{}

	patients := NewPatientService(patientsRepo, vitalsRepo, alertsRepo, auditor, logger)
	ctx := context.Background()

	p, err := patients.Register(ctx, "Alice", 34)
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Equal(t, "Alice", p.Name)
	require.Equal(t, 34, p.Age)

	// placeholder slots exist but resolve to empty results
	_, ok, err := vitalsRepo.Latest(ctx, p.ID)
	require.NoError(t, err)
	require.False(t, ok)

	log, err := alertsRepo.ListByPatient(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, log)

	require.Len(t, auditor.events, 1)
	require.Contains(t, auditor.events[0], p.ID)
}

func TestList_SnapshotOfRoster(t *testing.T) {
	logger := zap.NewNop()
	patients := NewPatientService(
		repository.NewMemoryPatientsRepo(),
		repository.NewMemoryVitalsRepo(),
		repository.NewMemoryAlertsRepo(),
		&fakeAuditor{},
		logger,
	)
	ctx := context.Background()

	_, err := patients.Register(ctx, "Alice", 34)
	require.NoError(t, err)
	_, err = patients.Register(ctx, "Bob", 61)
	require.NoError(t, err)

	all, err := patients.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

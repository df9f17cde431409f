package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vitalwatch/internal/domain"
)

func TestMemoryVitalsRepo_LatestReturnsPlaceholderWhenUnknown(t *testing.T) {
	repo := NewMemoryVitalsRepo()
	ctx := context.Background()

	reading, ok, err := repo.Latest(ctx, "no-such-patient")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, domain.VitalReading{}, reading)
}

func TestMemoryVitalsRepo_InitCreatesEmptySlot(t *testing.T) {
	repo := NewMemoryVitalsRepo()
	ctx := context.Background()

	require.NoError(t, repo.Init(ctx, "p1"))

	// registered but no reading yet: indistinguishable from unknown
	_, ok, err := repo.Latest(ctx, "p1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryVitalsRepo_PutOverwrites(t *testing.T) {
	repo := NewMemoryVitalsRepo()
	ctx := context.Background()

	const n = 5
	for i := 1; i <= n; i++ {
		err := repo.Put(ctx, domain.VitalReading{
			PatientID:     "p1",
			HeartRate:     float64(60 + i),
			Temperature:   36.5,
			BloodPressure: 120,
			Timestamp:     time.Now(),
		})
		require.NoError(t, err)
	}

	reading, ok, err := repo.Latest(ctx, "p1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, float64(60+n), reading.HeartRate, "only the last submission is retained")
}

func TestMemoryVitalsRepo_InitDoesNotClobberReading(t *testing.T) {
	repo := NewMemoryVitalsRepo()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, domain.VitalReading{PatientID: "p1", HeartRate: 80}))
	require.NoError(t, repo.Init(ctx, "p1"))

	reading, ok, err := repo.Latest(ctx, "p1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 80.0, reading.HeartRate)
}

func TestMemoryVitalsRepo_ReadingsIsolatedPerPatient(t *testing.T) {
	repo := NewMemoryVitalsRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("p%d", i)
		require.NoError(t, repo.Put(ctx, domain.VitalReading{PatientID: id, HeartRate: float64(70 + i)}))
	}

	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("p%d", i)
		reading, ok, err := repo.Latest(ctx, id)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, float64(70+i), reading.HeartRate)
	}
}

package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryPatientsRepo_CreateAssignsUniqueIDs(t *testing.T) {
	repo := NewMemoryPatientsRepo()
	ctx := context.Background()

	a, err := repo.Create(ctx, "Alice", 34)
	require.NoError(t, err)
	b, err := repo.Create(ctx, "Bob", 61)
	require.NoError(t, err)

	require.NotEmpty(t, a.ID)
	require.NotEmpty(t, b.ID)
	require.NotEqual(t, a.ID, b.ID)
	require.Equal(t, "Alice", a.Name)
	require.Equal(t, 34, a.Age)
}

func TestMemoryPatientsRepo_ListKeepsInsertionOrder(t *testing.T) {
	repo := NewMemoryPatientsRepo()
	ctx := context.Background()

	names := []string{"Alice", "Bob", "Carol"}
	for i, n := range names {
		_, err := repo.Create(ctx, n, 30+i)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, n := range names {
		require.Equal(t, n, all[i].Name)
	}
}

func TestMemoryPatientsRepo_ConcurrentCreates(t *testing.T) {
	repo := NewMemoryPatientsRepo()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, "P", 40)
		}()
	}
	wg.Wait()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, n)

	seen := map[string]bool{}
	for _, p := range all {
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

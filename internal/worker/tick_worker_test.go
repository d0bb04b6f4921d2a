package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantworks/idlefarm/internal/event"
	"github.com/verdantworks/idlefarm/internal/farm"
	"github.com/verdantworks/idlefarm/internal/rng"
	"github.com/verdantworks/idlefarm/internal/snapshot"
)

func TestTickJobAdvancesSimulation(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	svc := farm.NewService(context.Background(), snapshot.NewMemoryStore(), event.NewMemoryBus(), rng.NewSequence(0.5), now)
	job := NewTickJob(svc, now)

	clock = clock.Add(100 * time.Millisecond)
	require.NoError(t, job.Process(context.Background()))

	assert.InDelta(t, 0.1, svc.Snapshot().PlaytimeSec, 1e-9)
}

func TestTickJobUsesElapsedBetweenRuns(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	svc := farm.NewService(context.Background(), snapshot.NewMemoryStore(), event.NewMemoryBus(), rng.NewSequence(0.5), now)
	job := NewTickJob(svc, now)

	clock = clock.Add(50 * time.Millisecond)
	require.NoError(t, job.Process(context.Background()))
	clock = clock.Add(50 * time.Millisecond)
	require.NoError(t, job.Process(context.Background()))

	assert.InDelta(t, 0.1, svc.Snapshot().PlaytimeSec, 1e-9)
}

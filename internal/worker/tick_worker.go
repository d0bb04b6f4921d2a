package worker

import (
	"context"
	"sync"
	"time"

	"github.com/verdantworks/idlefarm/internal/farm"
)

// TickJob advances the farm simulation by the wall-clock time elapsed
// since its previous run. The farm service itself caps oversized steps,
// so a delayed run never produces a runaway tick.
type TickJob struct {
	svc  farm.Service
	now  func() time.Time
	mu   sync.Mutex
	last time.Time
}

// NewTickJob creates a tick job anchored at the current time
func NewTickJob(svc farm.Service, now func() time.Time) *TickJob {
	if now == nil {
		now = time.Now
	}
	return &TickJob{
		svc:  svc,
		now:  now,
		last: now(),
	}
}

// Process advances the simulation by the elapsed wall-clock time
func (j *TickJob) Process(ctx context.Context) error {
	j.mu.Lock()
	t := j.now()
	elapsed := t.Sub(j.last).Seconds()
	j.last = t
	j.mu.Unlock()

	j.svc.Tick(ctx, elapsed)
	return nil
}

package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testJob struct {
	executed *int32
	err      error
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	// Wait a bit for workers to process
	time.Sleep(100 * time.Millisecond)

	pool.Stop()

	assert.Equal(t, int32(2), atomic.LoadInt32(&executed))
}

func TestPoolSurvivesFailingJob(t *testing.T) {
	var executed int32
	pool := NewPool(1, 10)
	pool.Start()

	pool.Enqueue(&testJob{executed: &executed, err: errors.New("boom")})
	pool.Enqueue(&testJob{executed: &executed})

	time.Sleep(100 * time.Millisecond)
	pool.Stop()

	assert.Equal(t, int32(2), atomic.LoadInt32(&executed))
}

package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRegisterAndCancelRunInFlight(t *testing.T) {
	pool := &WorkerPool{
		activeTasks: make(map[string]activeTask),
	}

	ctxA, cancelA := context.WithCancel(context.Background())
	ctxB, cancelB := context.WithCancel(context.Background())
	ctxC, cancelC := context.WithCancel(context.Background())
	pool.RegisterTask("task-a", "run-1", cancelA)
	pool.RegisterTask("task-b", "run-1", cancelB)
	pool.RegisterTask("task-c", "run-2", cancelC)

	// Cancelling run-1 while excluding task-a must only abort task-b.
	pool.CancelRunInFlight("run-1", "task-a")
	assert.NoError(t, ctxA.Err())
	assert.Error(t, ctxB.Err())
	assert.NoError(t, ctxC.Err())

	// No exclusion aborts the rest of the run.
	pool.CancelRunInFlight("run-1", "")
	assert.Error(t, ctxA.Err())
	assert.NoError(t, ctxC.Err(), "other runs must not be touched")
}

func TestPoolUnregisterTask(t *testing.T) {
	pool := &WorkerPool{
		activeTasks: make(map[string]activeTask),
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterTask("task-a", "run-1", cancel)
	pool.UnregisterTask("task-a")

	// Unregistered tasks are invisible to run-level cancellation.
	pool.CancelRunInFlight("run-1", "")
	assert.NoError(t, ctx.Err())
}

func TestPoolGetActiveTaskIDs(t *testing.T) {
	pool := &WorkerPool{
		activeTasks: make(map[string]activeTask),
	}

	// Empty initially
	ids := pool.getActiveTaskIDs()
	assert.Empty(t, ids)

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterTask("task-a", "run-1", cancel1)
	pool.RegisterTask("task-b", "run-2", cancel2)

	ids = pool.getActiveTaskIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "task-a")
	assert.Contains(t, ids, "task-b")
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		stopCh:      make(chan struct{}),
		activeTasks: make(map[string]activeTask),
	}

	// First call should close the channel without panic.
	pool.Stop()

	// Second call must not panic (sync.Once guards the close).
	assert.NotPanics(t, func() { pool.Stop() })
}

package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/pkg/config"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		DefaultWorkers:          5,
		CPUWorkers:              1,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 15 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("test-worker", "test-pod", pipelinetask.QueueDefault, nil, cfg, NewRegistry(), nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", pipelinetask.QueueDefault, nil, cfg, NewRegistry(), nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", pipelinetask.QueueCPU, nil, cfg, NewRegistry(), nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "cpu", h.Queue)
	assert.Equal(t, WorkerStatusIdle, h.Status)
	assert.Equal(t, "", h.CurrentTaskID)
	assert.Equal(t, 0, h.TasksProcessed)

	// Simulate working state
	w.setStatus(WorkerStatusWorking, "task-abc")
	h = w.Health()
	assert.Equal(t, WorkerStatusWorking, h.Status)
	assert.Equal(t, "task-abc", h.CurrentTaskID)

	// Back to idle
	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, WorkerStatusIdle, h.Status)
	assert.Equal(t, "", h.CurrentTaskID)
}

func TestRetryDelay(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 1, want: 5 * time.Second},
		{attempt: 2, want: 10 * time.Second},
		{attempt: 3, want: 20 * time.Second},
		{attempt: 4, want: 40 * time.Second},
		{attempt: 5, want: 80 * time.Second},
		{attempt: 6, want: 160 * time.Second},
		{attempt: 7, want: 5 * time.Minute},
		{attempt: 100, want: 5 * time.Minute},
		{attempt: 0, want: 5 * time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, retryDelay(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistry()
	reg.Register("pad_track", func(ctx context.Context, task *ent.PipelineTask) (any, error) {
		return nil, nil
	})

	h, ok := reg.Resolve("pad_track")
	require.True(t, ok)
	assert.NotNil(t, h)

	_, ok = reg.Resolve("no_such_task")
	assert.False(t, ok)
}

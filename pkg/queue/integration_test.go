package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/pkg/config"
	testdb "github.com/monadical-sas/reflector/test/database"
)

// createTestTranscript creates the transcript row task rows hang off.
func createTestTranscript(ctx context.Context, t *testing.T, client *ent.Client) string {
	t.Helper()
	tr, err := client.Transcript.Create().
		SetID(uuid.New().String()).
		SetName("test recording").
		Save(ctx)
	require.NoError(t, err)
	return tr.ID
}

// enqueue inserts a task DAG in its own transaction.
func enqueue(ctx context.Context, t *testing.T, client *ent.Client, transcriptID, runID string, specs []TaskSpec) {
	t.Helper()
	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	require.NoError(t, EnqueueRun(ctx, tx, transcriptID, runID, specs))
	require.NoError(t, tx.Commit())
}

func getTask(ctx context.Context, t *testing.T, client *ent.Client, id string) *ent.PipelineTask {
	t.Helper()
	task, err := client.PipelineTask.Get(ctx, id)
	require.NoError(t, err)
	return task
}

// intTestQueueConfig returns a config with short intervals for fast tests.
// Orphan detection is effectively disabled; orphan tests invoke the scan
// directly.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		DefaultWorkers:          2,
		CPUWorkers:              1,
		PollInterval:            50 * time.Millisecond,
		PollIntervalJitter:      10 * time.Millisecond,
		HeartbeatInterval:       50 * time.Millisecond,
		GracefulShutdownTimeout: 5 * time.Second,
		OrphanDetectionInterval: time.Hour,
		OrphanThreshold:         time.Minute,
	}
}

// awaitCondition polls cond until it returns true or the timeout expires.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(interval)
	}
	t.Fatal(msg)
}

func TestClaimNextTask(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	runID := uuid.New().String()
	taskID := NewTaskID()
	enqueue(ctx, t, db.Client, transcriptID, runID, []TaskSpec{
		{ID: taskID, Name: "get_recording"},
	})

	w := NewWorker("w1", "pod-1", pipelinetask.QueueDefault, db.Client, intTestQueueConfig(), NewRegistry(), nil, nil)

	claimed, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	assert.Equal(t, taskID, claimed.ID)
	assert.Equal(t, pipelinetask.StatusRunning, claimed.Status)
	assert.Equal(t, 1, claimed.Attempt)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-1", *claimed.PodID)
	assert.NotNil(t, claimed.StartedAt)
	assert.NotNil(t, claimed.LastInteractionAt)

	// The one task is claimed; nothing else to hand out.
	_, err = w.claimNextTask(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestClaimHonorsRunAfter(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	taskID := NewTaskID()
	enqueue(ctx, t, db.Client, transcriptID, uuid.New().String(), []TaskSpec{
		{ID: taskID, Name: "get_recording"},
	})
	require.NoError(t, db.PipelineTask.UpdateOneID(taskID).
		SetRunAfter(time.Now().Add(time.Hour)).
		Exec(ctx))

	w := NewWorker("w1", "pod-1", pipelinetask.QueueDefault, db.Client, intTestQueueConfig(), NewRegistry(), nil, nil)

	_, err := w.claimNextTask(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable, "backoff window must hold the task back")
}

func TestClaimHonorsQueueLabel(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	taskID := NewTaskID()
	enqueue(ctx, t, db.Client, transcriptID, uuid.New().String(), []TaskSpec{
		{ID: taskID, Name: "mixdown", Queue: pipelinetask.QueueCPU},
	})

	cfg := intTestQueueConfig()
	defaultWorker := NewWorker("w-default", "pod-1", pipelinetask.QueueDefault, db.Client, cfg, NewRegistry(), nil, nil)
	cpuWorker := NewWorker("w-cpu", "pod-1", pipelinetask.QueueCPU, db.Client, cfg, NewRegistry(), nil, nil)

	_, err := defaultWorker.claimNextTask(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable, "default worker must not claim cpu tasks")

	claimed, err := cpuWorker.claimNextTask(ctx)
	require.NoError(t, err)
	assert.Equal(t, taskID, claimed.ID)
}

func TestConcurrentClaimsNoDuplicates(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	runID := uuid.New().String()
	specs := make([]TaskSpec, 5)
	for i := range specs {
		specs[i] = TaskSpec{ID: NewTaskID(), Name: "pad_track"}
	}
	enqueue(ctx, t, db.Client, transcriptID, runID, specs)

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimedIDs := make(map[string]int)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := NewWorker("w", "pod-1", pipelinetask.QueueDefault, db.Client, cfg, NewRegistry(), nil, nil)
			task, err := w.claimNextTask(ctx)
			if err != nil {
				return
			}
			mu.Lock()
			claimedIDs[task.ID]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	// FOR UPDATE SKIP LOCKED must hand each claimer a different row.
	require.Len(t, claimedIDs, 5, "each of the 5 workers should claim a distinct task")
	for id, count := range claimedIDs {
		assert.Equal(t, 1, count, "task %s claimed more than once", id)
	}
}

func TestConcurrencyKeyLimitsClaims(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	runID := uuid.New().String()
	first := NewTaskID()
	second := NewTaskID()
	enqueue(ctx, t, db.Client, transcriptID, runID, []TaskSpec{
		{ID: first, Name: "mixdown", Queue: pipelinetask.QueueCPU, ConcurrencyKey: "mixdown", MaxConcurrency: 1},
		{ID: second, Name: "mixdown", Queue: pipelinetask.QueueCPU, ConcurrencyKey: "mixdown", MaxConcurrency: 1},
	})

	w := NewWorker("w1", "pod-1", pipelinetask.QueueCPU, db.Client, intTestQueueConfig(), NewRegistry(), nil, nil)

	claimed, err := w.claimNextTask(ctx)
	require.NoError(t, err)

	// One task with the key is running; the cap holds the second back.
	_, err = w.claimNextTask(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)

	require.NoError(t, w.completeTask(ctx, claimed, nil))

	next, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, claimed.ID, next.ID)
}

func TestCompletionPromotesDependent(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	runID := uuid.New().String()
	parent := NewTaskID()
	child := NewTaskID()
	enqueue(ctx, t, db.Client, transcriptID, runID, []TaskSpec{
		{ID: parent, Name: "get_recording"},
		{ID: child, Name: "get_participants", DependsOn: []string{parent}},
	})

	assert.Equal(t, pipelinetask.StatusPending, getTask(ctx, t, db.Client, parent).Status)
	assert.Equal(t, pipelinetask.StatusWaiting, getTask(ctx, t, db.Client, child).Status)

	w := NewWorker("w1", "pod-1", pipelinetask.QueueDefault, db.Client, intTestQueueConfig(), NewRegistry(), nil, nil)
	claimed, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	require.Equal(t, parent, claimed.ID, "only the parent is runnable")

	require.NoError(t, w.completeTask(ctx, claimed, map[string]int{"tracks": 3}))

	parentRow := getTask(ctx, t, db.Client, parent)
	assert.Equal(t, pipelinetask.StatusCompleted, parentRow.Status)
	assert.NotNil(t, parentRow.CompletedAt)
	assert.Contains(t, string(parentRow.Result), "tracks")

	childRow := getTask(ctx, t, db.Client, child)
	assert.Equal(t, pipelinetask.StatusPending, childRow.Status)
}

func TestJoinWaitsForAllDependencies(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	runID := uuid.New().String()
	depA := NewTaskID()
	depB := NewTaskID()
	join := NewTaskID()
	enqueue(ctx, t, db.Client, transcriptID, runID, []TaskSpec{
		{ID: depA, Name: "pad_track"},
		{ID: depB, Name: "pad_track"},
		{ID: join, Name: "paddings_join", DependsOn: []string{depA, depB}},
	})

	w := NewWorker("w1", "pod-1", pipelinetask.QueueDefault, db.Client, intTestQueueConfig(), NewRegistry(), nil, nil)

	first, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	require.NoError(t, w.completeTask(ctx, first, nil))

	// One of two dependencies done: the join must stay gated.
	assert.Equal(t, pipelinetask.StatusWaiting, getTask(ctx, t, db.Client, join).Status)

	second, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	require.NoError(t, w.completeTask(ctx, second, nil))

	assert.Equal(t, pipelinetask.StatusPending, getTask(ctx, t, db.Client, join).Status)
}

func TestFanOutChildrenGateJoin(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	runID := uuid.New().String()
	parent := NewTaskID()
	join := NewTaskID()
	enqueue(ctx, t, db.Client, transcriptID, runID, []TaskSpec{
		{ID: parent, Name: "process_paddings"},
		{ID: join, Name: "paddings_join", DependsOn: []string{parent}},
	})

	w := NewWorker("w1", "pod-1", pipelinetask.QueueDefault, db.Client, intTestQueueConfig(), NewRegistry(), nil, nil)
	claimed, err := w.claimNextTask(ctx)
	require.NoError(t, err)

	// The parent discovers two tracks at runtime and fans out.
	children := []TaskSpec{
		{ID: NewTaskID(), Name: "pad_track", Params: map[string]int{"track": 0}},
		{ID: NewTaskID(), Name: "pad_track", Params: map[string]int{"track": 1}},
	}
	require.NoError(t, FanOut(ctx, db.Client, claimed, join, children))

	deps, err := db.PipelineTask.Query().
		Where(pipelinetask.IDEQ(join)).
		QueryDependsOn().
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, deps, 3, "join should depend on the parent and both children")

	require.NoError(t, w.completeTask(ctx, claimed, nil))
	assert.Equal(t, pipelinetask.StatusWaiting, getTask(ctx, t, db.Client, join).Status,
		"children still pending, join must stay gated")

	for i := 0; i < 2; i++ {
		child, err := w.claimNextTask(ctx)
		require.NoError(t, err)
		require.NoError(t, w.completeTask(ctx, child, nil))
	}

	assert.Equal(t, pipelinetask.StatusPending, getTask(ctx, t, db.Client, join).Status)
}

func TestFanOutWithoutChildren(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	runID := uuid.New().String()
	parent := NewTaskID()
	join := NewTaskID()
	enqueue(ctx, t, db.Client, transcriptID, runID, []TaskSpec{
		{ID: parent, Name: "process_paddings"},
		{ID: join, Name: "paddings_join", DependsOn: []string{parent}},
	})

	w := NewWorker("w1", "pod-1", pipelinetask.QueueDefault, db.Client, intTestQueueConfig(), NewRegistry(), nil, nil)
	claimed, err := w.claimNextTask(ctx)
	require.NoError(t, err)

	require.NoError(t, FanOut(ctx, db.Client, claimed, join, nil))
	require.NoError(t, w.completeTask(ctx, claimed, nil))

	// No children: the join is gated on the parent alone.
	assert.Equal(t, pipelinetask.StatusPending, getTask(ctx, t, db.Client, join).Status)
}

func TestFailTaskReschedulesWithBackoff(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	taskID := NewTaskID()
	enqueue(ctx, t, db.Client, transcriptID, uuid.New().String(), []TaskSpec{
		{ID: taskID, Name: "transcribe_track", MaxAttempts: 3},
	})

	w := NewWorker("w1", "pod-1", pipelinetask.QueueDefault, db.Client, intTestQueueConfig(), NewRegistry(), nil, nil)
	claimed, err := w.claimNextTask(ctx)
	require.NoError(t, err)

	before := time.Now()
	require.NoError(t, w.failTask(ctx, claimed, errors.New("asr unavailable")))

	row := getTask(ctx, t, db.Client, taskID)
	assert.Equal(t, pipelinetask.StatusPending, row.Status)
	assert.Equal(t, 1, row.Attempt, "attempt spent at claim time stays spent")
	require.NotNil(t, row.ErrorMessage)
	assert.Equal(t, "asr unavailable", *row.ErrorMessage)
	assert.Nil(t, row.PodID)
	assert.True(t, row.RunAfter.After(before.Add(2*time.Second)),
		"first retry should back off roughly 5s, got run_after %s", row.RunAfter)

	// Not claimable until run_after passes.
	_, err = w.claimNextTask(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestTerminalFailureCancelsRunAndFiresHook(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	runID := uuid.New().String()
	fatal := NewTaskID()
	sibling := NewTaskID()
	dependent := NewTaskID()
	enqueue(ctx, t, db.Client, transcriptID, runID, []TaskSpec{
		{ID: fatal, Name: "get_recording", MaxAttempts: 1},
		{ID: sibling, Name: "mixdown", Queue: pipelinetask.QueueCPU},
		{ID: dependent, Name: "finalize", DependsOn: []string{fatal}},
	})

	var hookCalls atomic.Int64
	var hookTaskID string
	hook := func(ctx context.Context, task *ent.PipelineTask) {
		hookCalls.Add(1)
		hookTaskID = task.ID
	}
	pool := &WorkerPool{activeTasks: make(map[string]activeTask)}
	w := NewWorker("w1", "pod-1", pipelinetask.QueueDefault, db.Client, intTestQueueConfig(), NewRegistry(), pool, hook)

	claimed, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	require.Equal(t, fatal, claimed.ID)

	require.NoError(t, w.failTask(ctx, claimed, errors.New("recording not found")))

	assert.Equal(t, pipelinetask.StatusFailed, getTask(ctx, t, db.Client, fatal).Status)

	dependentRow := getTask(ctx, t, db.Client, dependent)
	assert.Equal(t, pipelinetask.StatusCancelled, dependentRow.Status)
	require.NotNil(t, dependentRow.ErrorMessage)
	assert.Contains(t, *dependentRow.ErrorMessage, "workflow failed at get_recording")

	// Everything queued in the run goes with it, pending or waiting.
	assert.Equal(t, pipelinetask.StatusCancelled, getTask(ctx, t, db.Client, sibling).Status)

	assert.Equal(t, int64(1), hookCalls.Load())
	assert.Equal(t, fatal, hookTaskID)
}

func TestPoolEndToEnd(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	runID := uuid.New().String()
	first := NewTaskID()
	second := NewTaskID()

	var mu sync.Mutex
	var order []string
	var gotTrack int

	registry := NewRegistry()
	registry.Register("get_recording", func(ctx context.Context, task *ent.PipelineTask) (any, error) {
		var params struct {
			Track int `json:"track"`
		}
		if err := DecodeParams(task, &params); err != nil {
			return nil, err
		}
		mu.Lock()
		order = append(order, "get_recording")
		gotTrack = params.Track
		mu.Unlock()
		return map[string]int{"tracks": 2}, nil
	})
	registry.Register("mixdown", func(ctx context.Context, task *ent.PipelineTask) (any, error) {
		mu.Lock()
		order = append(order, "mixdown")
		mu.Unlock()
		return nil, nil
	})

	pool := NewWorkerPool("pod-e2e", db.Client, intTestQueueConfig(), registry, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	enqueue(ctx, t, db.Client, transcriptID, runID, []TaskSpec{
		{ID: first, Name: "get_recording", Params: map[string]int{"track": 7}},
		{ID: second, Name: "mixdown", Queue: pipelinetask.QueueCPU, DependsOn: []string{first}},
	})

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "pipeline did not finish", func() bool {
		return getTask(ctx, t, db.Client, second).Status == pipelinetask.StatusCompleted
	})

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"get_recording", "mixdown"}, order)
	assert.Equal(t, 7, gotTrack)

	firstRow := getTask(ctx, t, db.Client, first)
	assert.Equal(t, pipelinetask.StatusCompleted, firstRow.Status)
	var result struct {
		Tracks int `json:"tracks"`
	}
	require.NoError(t, DecodeResult(firstRow, &result))
	assert.Equal(t, 2, result.Tracks)
}

func TestTaskTimeoutFailsTerminally(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	taskID := NewTaskID()

	registry := NewRegistry()
	registry.Register("transcribe_track", func(ctx context.Context, task *ent.PipelineTask) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	pool := NewWorkerPool("pod-timeout", db.Client, intTestQueueConfig(), registry, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	enqueue(ctx, t, db.Client, transcriptID, uuid.New().String(), []TaskSpec{
		{ID: taskID, Name: "transcribe_track", MaxAttempts: 1, TimeoutSeconds: 0.2},
	})

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "task did not fail", func() bool {
		return getTask(ctx, t, db.Client, taskID).Status == pipelinetask.StatusFailed
	})

	row := getTask(ctx, t, db.Client, taskID)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "timed out after")
}

func TestCancelRunAbortsInFlight(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	runID := uuid.New().String()
	blocker := NewTaskID()
	queued := NewTaskID()

	started := make(chan struct{})
	var once sync.Once
	registry := NewRegistry()
	registry.Register("detect_topics", func(ctx context.Context, task *ent.PipelineTask) (any, error) {
		once.Do(func() { close(started) })
		<-ctx.Done()
		return nil, ctx.Err()
	})

	pool := NewWorkerPool("pod-cancel", db.Client, intTestQueueConfig(), registry, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	enqueue(ctx, t, db.Client, transcriptID, runID, []TaskSpec{
		{ID: blocker, Name: "detect_topics"},
		{ID: queued, Name: "topics_join", DependsOn: []string{blocker}},
	})

	select {
	case <-started:
	case <-time.After(10 * time.Second):
		t.Fatal("handler never started")
	}

	n, err := pool.CancelRun(ctx, runID, "cancelled by user")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "one queued task should be cancelled in the database")

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "in-flight task not cancelled", func() bool {
		return getTask(ctx, t, db.Client, blocker).Status == pipelinetask.StatusCancelled
	})

	queuedRow := getTask(ctx, t, db.Client, queued)
	assert.Equal(t, pipelinetask.StatusCancelled, queuedRow.Status)
	require.NotNil(t, queuedRow.ErrorMessage)
	assert.Equal(t, "cancelled by user", *queuedRow.ErrorMessage)
}

func TestOrphanRedrive(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	taskID := NewTaskID()
	enqueue(ctx, t, db.Client, transcriptID, uuid.New().String(), []TaskSpec{
		{ID: taskID, Name: "generate_waveform", MaxAttempts: 3},
	})

	// Claim on a pod that then "dies": heartbeat goes stale.
	w := NewWorker("w1", "pod-dead", pipelinetask.QueueDefault, db.Client, intTestQueueConfig(), NewRegistry(), nil, nil)
	_, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	require.NoError(t, db.PipelineTask.UpdateOneID(taskID).
		SetLastInteractionAt(time.Now().Add(-10*time.Minute)).
		Exec(ctx))

	pool := &WorkerPool{
		podID:       "pod-scanner",
		client:      db.Client,
		config:      intTestQueueConfig(),
		activeTasks: make(map[string]activeTask),
	}
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	row := getTask(ctx, t, db.Client, taskID)
	assert.Equal(t, pipelinetask.StatusPending, row.Status)
	assert.Equal(t, 1, row.Attempt, "re-drive must not refund the attempt")
	assert.Nil(t, row.PodID)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "orphaned: no heartbeat from pod pod-dead")

	pool.orphans.mu.Lock()
	defer pool.orphans.mu.Unlock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	assert.False(t, pool.orphans.lastOrphanScan.IsZero())
}

func TestOrphanOutOfAttemptsFailsRun(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	runID := uuid.New().String()
	taskID := NewTaskID()
	dependent := NewTaskID()
	enqueue(ctx, t, db.Client, transcriptID, runID, []TaskSpec{
		{ID: taskID, Name: "mixdown", MaxAttempts: 1},
		{ID: dependent, Name: "generate_waveform", DependsOn: []string{taskID}},
	})

	w := NewWorker("w1", "pod-dead", pipelinetask.QueueDefault, db.Client, intTestQueueConfig(), NewRegistry(), nil, nil)
	_, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	require.NoError(t, db.PipelineTask.UpdateOneID(taskID).
		SetLastInteractionAt(time.Now().Add(-10*time.Minute)).
		Exec(ctx))

	var hookCalls atomic.Int64
	pool := &WorkerPool{
		podID:       "pod-scanner",
		client:      db.Client,
		config:      intTestQueueConfig(),
		activeTasks: make(map[string]activeTask),
		failureHook: func(ctx context.Context, task *ent.PipelineTask) { hookCalls.Add(1) },
	}
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	assert.Equal(t, pipelinetask.StatusFailed, getTask(ctx, t, db.Client, taskID).Status)
	assert.Equal(t, pipelinetask.StatusCancelled, getTask(ctx, t, db.Client, dependent).Status)
	assert.Equal(t, int64(1), hookCalls.Load())
}

func TestRecoverStartupOrphans(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	mine := NewTaskID()
	other := NewTaskID()
	enqueue(ctx, t, db.Client, transcriptID, uuid.New().String(), []TaskSpec{
		{ID: mine, Name: "pad_track", MaxAttempts: 3},
	})
	enqueue(ctx, t, db.Client, transcriptID, uuid.New().String(), []TaskSpec{
		{ID: other, Name: "pad_track", MaxAttempts: 3},
	})

	cfg := intTestQueueConfig()
	wMine := NewWorker("w1", "pod-restarted", pipelinetask.QueueDefault, db.Client, cfg, NewRegistry(), nil, nil)
	wOther := NewWorker("w2", "pod-alive", pipelinetask.QueueDefault, db.Client, cfg, NewRegistry(), nil, nil)
	// Claim order is by created_at, so wMine gets `mine` first.
	claimedMine, err := wMine.claimNextTask(ctx)
	require.NoError(t, err)
	require.Equal(t, mine, claimedMine.ID)
	_, err = wOther.claimNextTask(ctx)
	require.NoError(t, err)

	pool := &WorkerPool{
		podID:       "pod-restarted",
		client:      db.Client,
		config:      cfg,
		activeTasks: make(map[string]activeTask),
	}
	require.NoError(t, pool.RecoverStartupOrphans(ctx))

	mineRow := getTask(ctx, t, db.Client, mine)
	assert.Equal(t, pipelinetask.StatusPending, mineRow.Status)
	require.NotNil(t, mineRow.ErrorMessage)
	assert.Contains(t, *mineRow.ErrorMessage, "pod pod-restarted restarted")

	// The live pod's task is untouched.
	assert.Equal(t, pipelinetask.StatusRunning, getTask(ctx, t, db.Client, other).Status)
}

func TestHeartbeatKeepsTaskFresh(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := createTestTranscript(ctx, t, db.Client)
	taskID := NewTaskID()

	release := make(chan struct{})
	registry := NewRegistry()
	registry.Register("transcribe_track", func(ctx context.Context, task *ent.PipelineTask) (any, error) {
		select {
		case <-release:
			return nil, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})

	pool := NewWorkerPool("pod-hb", db.Client, intTestQueueConfig(), registry, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	enqueue(ctx, t, db.Client, transcriptID, uuid.New().String(), []TaskSpec{
		{ID: taskID, Name: "transcribe_track"},
	})

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "task never claimed", func() bool {
		return getTask(ctx, t, db.Client, taskID).Status == pipelinetask.StatusRunning
	})
	claimedAt := getTask(ctx, t, db.Client, taskID).LastInteractionAt
	require.NotNil(t, claimedAt)

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "heartbeat never advanced", func() bool {
		last := getTask(ctx, t, db.Client, taskID).LastInteractionAt
		return last != nil && last.After(*claimedAt)
	})

	close(release)
	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "task did not complete", func() bool {
		return getTask(ctx, t, db.Client, taskID).Status == pipelinetask.StatusCompleted
	})
}

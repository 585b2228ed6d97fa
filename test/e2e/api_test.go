package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/ent/transcript"
	"github.com/monadical-sas/reflector/pkg/events"
	"github.com/monadical-sas/reflector/pkg/models"
	"github.com/monadical-sas/reflector/pkg/pipeline"
)

func TestSubmit_RejectsInvalidManifests(t *testing.T) {
	app := NewTestApp(t, WithWorkers(0))

	cases := []struct {
		manifest *models.RecordingManifest
		wantIn   string
	}{
		{&models.RecordingManifest{TranscriptID: "t1", Bucket: "b", Tracks: []models.ManifestTrack{{S3Key: "k"}}}, "recording_id"},
		{&models.RecordingManifest{RecordingID: "r1", Bucket: "b", Tracks: []models.ManifestTrack{{S3Key: "k"}}}, "transcript_id"},
		{&models.RecordingManifest{RecordingID: "r1", TranscriptID: "t1", Tracks: []models.ManifestTrack{{S3Key: "k"}}}, "bucket"},
		{&models.RecordingManifest{RecordingID: "r1", TranscriptID: "t1", Bucket: "b"}, "track"},
		{&models.RecordingManifest{RecordingID: "r1", TranscriptID: "t1", Bucket: "b", Tracks: []models.ManifestTrack{{}}}, "s3_key"},
	}
	for _, tc := range cases {
		resp := app.postJSON("/v1/pipelines/multitrack", tc.manifest, http.StatusBadRequest)
		msg, _ := resp["message"].(string)
		assert.Contains(t, msg, tc.wantIn)
	}

	// Nothing invalid should have created state.
	count, err := app.EntClient.Transcript.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSubmit_OneActiveRunPerTranscript(t *testing.T) {
	// Zero workers: the DAG is seeded but never executed, so the claim
	// stays held for the whole test.
	app := NewTestApp(t, WithWorkers(0))

	transcriptID := uuid.NewString()
	manifest := newManifest("rec-conflict", transcriptID, "rec-conflict/track_0.wav")

	runID := app.Submit(manifest)

	tr := app.Transcript(transcriptID)
	assert.Equal(t, transcript.StatusProcessing, tr.Status)
	require.NotNil(t, tr.WorkflowRunID)
	assert.Equal(t, runID, *tr.WorkflowRunID)
	assert.Equal(t, "Recording rec-conflict", tr.Name)

	// The static DAG is in place: one ready root, the rest gated.
	tasks := app.Tasks(runID)
	assert.Len(t, tasks, 19)
	var pending, waiting int
	for _, task := range tasks {
		switch task.Status {
		case pipelinetask.StatusPending:
			pending++
		case pipelinetask.StatusWaiting:
			waiting++
		}
	}
	assert.Equal(t, 1, pending)
	assert.Equal(t, 18, waiting)
	require.Len(t, tasksNamed(tasks, pipeline.TaskGetRecording), 1)
	assert.Equal(t, pipelinetask.StatusPending, tasksNamed(tasks, pipeline.TaskGetRecording)[0].Status)

	// A second submission while the run is active is refused.
	resp := app.postJSON("/v1/pipelines/multitrack", manifest, http.StatusConflict)
	msg, _ := resp["message"].(string)
	assert.Contains(t, msg, "active workflow run")

	// Once the claim is released (as the failure path does), the same
	// transcript accepts a fresh run.
	err := app.EntClient.Transcript.UpdateOneID(transcriptID).
		SetStatus(transcript.StatusError).
		ClearWorkflowRunID().
		Exec(context.Background())
	require.NoError(t, err)

	secondRunID := app.Submit(manifest)
	assert.NotEqual(t, runID, secondRunID)
	assert.Equal(t, transcript.StatusProcessing, app.Transcript(transcriptID).Status)
}

func TestHealth_ReportsComponentStatus(t *testing.T) {
	app := NewTestApp(t)

	resp := app.getJSON("/v1/health", http.StatusOK)
	assert.Equal(t, "healthy", resp["status"])

	checks, ok := resp["checks"].(map[string]any)
	require.True(t, ok, "checks missing in %v", resp)
	db, _ := checks["database"].(map[string]any)
	assert.Equal(t, "healthy", db["status"])
	pool, _ := checks["worker_pool"].(map[string]any)
	assert.Equal(t, "healthy", pool["status"])
}

func TestWebSocket_PingAndSubscribe(t *testing.T) {
	app := NewTestApp(t, WithWorkers(0))

	ws := NewWSClient(t, app)
	ws.Ping()

	// Subscribing to a transcript that does not exist yet is fine; the
	// channel is only a name until events arrive.
	ws.Subscribe("transcript:" + uuid.NewString())

	// Events published before a later subscriber connects are caught up
	// on subscribe.
	ctx := context.Background()
	transcriptID := uuid.NewString()
	_, err := app.EntClient.Transcript.Create().SetID(transcriptID).Save(ctx)
	require.NoError(t, err)
	require.NoError(t, app.Publisher.PublishStatus(ctx, transcriptID,
		events.StatusPayload{Value: "processing"}, "status:processing:e2e"))

	late := NewWSClient(t, app)
	late.Subscribe("transcript:" + transcriptID)
	late.WaitForStatus("processing", 5*time.Second)
}

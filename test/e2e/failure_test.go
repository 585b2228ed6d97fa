package e2e

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/ent/transcript"
	"github.com/monadical-sas/reflector/pkg/pipeline"
)

// TestRunFailure_PropagatesToTranscript drives a run whose source track
// does not exist. Padding fails on every attempt (whether the probe hits
// a 404 or ffmpeg is missing entirely), so after the retry budget the
// run must end terminally: transcript in error, claim released, the rest
// of the DAG cancelled, and the error visible on the event stream.
//
// Retry backoff is 5s then 10s, so the terminal state lands ~15s in.
func TestRunFailure_PropagatesToTranscript(t *testing.T) {
	app := NewTestApp(t)

	transcriptID := uuid.NewString()
	manifest := newManifest("rec-broken", transcriptID, "rec-broken/track_0.wav")

	ws := NewWSClient(t, app)
	ws.Subscribe("transcript:" + transcriptID)

	runID := app.Submit(manifest)
	ws.WaitForStatus("processing", 10*time.Second)

	app.WaitForTranscriptStatus(transcriptID, transcript.StatusError, 60*time.Second)
	ws.WaitForStatus("error", 10*time.Second)

	tr := app.Transcript(transcriptID)
	assert.Nil(t, tr.WorkflowRunID, "claim must be released on terminal failure")

	tasks := app.Tasks(runID)

	// The doomed fan-out child burned its whole retry budget.
	padTracks := tasksNamed(tasks, pipeline.TaskPadTrack)
	require.Len(t, padTracks, 1)
	assert.Equal(t, pipelinetask.StatusFailed, padTracks[0].Status)
	assert.Equal(t, 3, padTracks[0].Attempt)

	// Upstream completed before the failure; downstream never ran.
	recs := tasksNamed(tasks, pipeline.TaskGetRecording)
	require.Len(t, recs, 1)
	assert.Equal(t, pipelinetask.StatusCompleted, recs[0].Status)
	for _, name := range []string{
		pipeline.TaskPaddingsJoin,
		pipeline.TaskMixdown,
		pipeline.TaskFinalize,
		pipeline.TaskSendWebhook,
	} {
		named := tasksNamed(tasks, name)
		require.Len(t, named, 1, name)
		assert.Equal(t, pipelinetask.StatusCancelled, named[0].Status, name)
	}

	// No downstream side effects leaked out.
	assert.Empty(t, app.ASR.Requests())
	assert.Empty(t, app.Webhooks.Deliveries())
	assert.Empty(t, app.Zulip.Sent())

	// With the claim released, the transcript accepts a fresh run.
	secondRunID := app.Submit(manifest)
	assert.NotEqual(t, runID, secondRunID)
}

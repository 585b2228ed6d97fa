package e2e

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"math"
	"net/http"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/ent/transcript"
	"github.com/monadical-sas/reflector/pkg/models"
)

// postJSON sends a JSON request, asserts the status code and decodes the
// JSON response body.
func (app *TestApp) postJSON(path string, body any, wantStatus int) map[string]any {
	app.t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(app.t, err)

	resp, err := http.Post(app.BaseURL+path, "application/json", bytes.NewReader(payload))
	require.NoError(app.t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	require.Equal(app.t, wantStatus, resp.StatusCode, "unexpected status for POST %s: %v", path, decoded)
	return decoded
}

func (app *TestApp) getJSON(path string, wantStatus int) map[string]any {
	app.t.Helper()

	resp, err := http.Get(app.BaseURL + path)
	require.NoError(app.t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	require.Equal(app.t, wantStatus, resp.StatusCode, "unexpected status for GET %s: %v", path, decoded)
	return decoded
}

// Submit posts a manifest, expects acceptance and returns the workflow
// run id.
func (app *TestApp) Submit(manifest *models.RecordingManifest) string {
	app.t.Helper()
	resp := app.postJSON("/v1/pipelines/multitrack", manifest, http.StatusAccepted)
	runID, ok := resp["workflow_run_id"].(string)
	require.True(app.t, ok, "workflow_run_id missing in %v", resp)
	require.NotEmpty(app.t, runID)
	return runID
}

// Transcript fetches the current transcript row.
func (app *TestApp) Transcript(id string) *ent.Transcript {
	app.t.Helper()
	tr, err := app.EntClient.Transcript.Get(context.Background(), id)
	require.NoError(app.t, err)
	return tr
}

// WaitForTranscriptStatus polls until the transcript reaches the wanted
// status. Task retries back off in whole seconds, so timeouts here are
// generous.
func (app *TestApp) WaitForTranscriptStatus(id string, status transcript.Status, timeout time.Duration) {
	app.t.Helper()
	require.Eventually(app.t, func() bool {
		tr, err := app.EntClient.Transcript.Get(context.Background(), id)
		return err == nil && tr.Status == status
	}, timeout, 100*time.Millisecond, "transcript %s never reached status %s", id, status)
}

// Tasks returns all task rows of one workflow run.
func (app *TestApp) Tasks(runID string) []*ent.PipelineTask {
	app.t.Helper()
	tasks, err := app.EntClient.PipelineTask.Query().
		Where(pipelinetask.WorkflowRunID(runID)).
		All(context.Background())
	require.NoError(app.t, err)
	return tasks
}

func tasksNamed(tasks []*ent.PipelineTask, name string) []*ent.PipelineTask {
	var out []*ent.PipelineTask
	for _, task := range tasks {
		if task.Name == name {
			out = append(out, task)
		}
	}
	return out
}

// newManifest builds a minimal valid manifest over the source bucket.
func newManifest(recordingID, transcriptID string, keys ...string) *models.RecordingManifest {
	m := &models.RecordingManifest{
		RecordingID:  recordingID,
		TranscriptID: transcriptID,
		Bucket:       sourceBucket,
	}
	for _, key := range keys {
		m.Tracks = append(m.Tracks, models.ManifestTrack{S3Key: key})
	}
	return m
}

// requireFFmpeg skips tests that need the audio toolchain on hosts
// without it.
func requireFFmpeg(t *testing.T) {
	t.Helper()
	for _, bin := range []string{"ffmpeg", "ffprobe"} {
		if _, err := exec.LookPath(bin); err != nil {
			t.Skipf("%s not installed, skipping", bin)
		}
	}
}

// wavBytes renders a mono 16-bit PCM sine tone as a complete WAV file.
// WAV containers have no start_time metadata, so these tracks take the
// pass-through path in padding.
func wavBytes(seconds, freq float64) []byte {
	const sampleRate = 16000
	n := int(seconds * sampleRate)

	var pcm bytes.Buffer
	for i := 0; i < n; i++ {
		sample := int16(12000 * math.Sin(2*math.Pi*freq*float64(i)/sampleRate))
		_ = binary.Write(&pcm, binary.LittleEndian, sample)
	}
	data := pcm.Bytes()

	var b bytes.Buffer
	b.WriteString("RIFF")
	_ = binary.Write(&b, binary.LittleEndian, uint32(36+len(data)))
	b.WriteString("WAVEfmt ")
	_ = binary.Write(&b, binary.LittleEndian, uint32(16))           // fmt chunk size
	_ = binary.Write(&b, binary.LittleEndian, uint16(1))            // PCM
	_ = binary.Write(&b, binary.LittleEndian, uint16(1))            // mono
	_ = binary.Write(&b, binary.LittleEndian, uint32(sampleRate))   // sample rate
	_ = binary.Write(&b, binary.LittleEndian, uint32(sampleRate*2)) // byte rate
	_ = binary.Write(&b, binary.LittleEndian, uint16(2))            // block align
	_ = binary.Write(&b, binary.LittleEndian, uint16(16))           // bits per sample
	b.WriteString("data")
	_ = binary.Write(&b, binary.LittleEndian, uint32(len(data)))
	b.Write(data)
	return b.Bytes()
}

package pipeline

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/pkg/config"
	"github.com/monadical-sas/reflector/pkg/models"
	"github.com/monadical-sas/reflector/pkg/queue"
)

func testPipelineConfig() *config.Config {
	return &config.Config{
		DataDir: "/tmp/reflector-test",
		Pipeline: config.PipelineConfig{
			WaveformSegments:    1000,
			TopicChunkWordCount: 300,
			PresignedURLTTL:     15 * time.Minute,
			TimeoutShort:        60 * time.Second,
			TimeoutMedium:       300 * time.Second,
			TimeoutLong:         600 * time.Second,
			TimeoutHeavy:        900 * time.Second,
		},
	}
}

func testManifest(tracks int) *models.RecordingManifest {
	m := &models.RecordingManifest{
		RecordingID:  "rec-1",
		TranscriptID: "tr-1",
		Bucket:       "recordings",
	}
	for i := 0; i < tracks; i++ {
		m.Tracks = append(m.Tracks, models.ManifestTrack{S3Key: string(rune('a'+i)) + ".webm"})
	}
	return m
}

// specIndex maps the generated IDs back to task names so the graph can
// be asserted by name.
func specIndex(specs []queue.TaskSpec) (byName map[string]queue.TaskSpec, nameOf map[string]string) {
	byName = make(map[string]queue.TaskSpec, len(specs))
	nameOf = make(map[string]string, len(specs))
	for _, s := range specs {
		byName[s.Name] = s
		nameOf[s.ID] = s.Name
	}
	return byName, nameOf
}

func depNames(s queue.TaskSpec, nameOf map[string]string) []string {
	names := make([]string, 0, len(s.DependsOn))
	for _, id := range s.DependsOn {
		names = append(names, nameOf[id])
	}
	sort.Strings(names)
	return names
}

func TestRunSpecsShape(t *testing.T) {
	p := &Pipeline{cfg: testPipelineConfig()}
	specs := p.runSpecs(testManifest(3))
	require.Len(t, specs, 19)

	byName, nameOf := specIndex(specs)
	require.Len(t, byName, 19, "task names are unique")

	seen := make(map[string]bool)
	for _, s := range specs {
		require.NotEmpty(t, s.ID)
		require.False(t, seen[s.ID], "task IDs are unique")
		seen[s.ID] = true
		for _, dep := range s.DependsOn {
			require.Contains(t, nameOf, dep, "%s depends on an ID outside the run", s.Name)
		}
	}

	assert.Empty(t, byName[TaskGetRecording].DependsOn)
	assert.Equal(t, []string{TaskGetRecording}, depNames(byName[TaskGetParticipants], nameOf))
	assert.Equal(t, []string{TaskGetParticipants}, depNames(byName[TaskProcessPaddings], nameOf))
	assert.Equal(t, []string{TaskProcessPaddings}, depNames(byName[TaskPaddingsJoin], nameOf))
	assert.Equal(t, []string{TaskPaddingsJoin}, depNames(byName[TaskProcessTranscriptions], nameOf))
	assert.Equal(t, []string{TaskPaddingsJoin}, depNames(byName[TaskMixdown], nameOf))
	assert.Equal(t, []string{TaskProcessTranscriptions}, depNames(byName[TaskTranscriptionsJoin], nameOf))
	assert.Equal(t, []string{TaskTranscriptionsJoin}, depNames(byName[TaskDetectTopics], nameOf))
	assert.Equal(t, []string{TaskDetectTopics}, depNames(byName[TaskTopicsJoin], nameOf))
	assert.Equal(t, []string{TaskMixdown}, depNames(byName[TaskGenerateWaveform], nameOf))
	assert.Equal(t, []string{TaskTopicsJoin}, depNames(byName[TaskGenerateTitle], nameOf))
	assert.Equal(t, []string{TaskTopicsJoin}, depNames(byName[TaskExtractSubjects], nameOf))
	assert.Equal(t, []string{TaskExtractSubjects}, depNames(byName[TaskSubjectsJoin], nameOf))
	assert.Equal(t, []string{TaskSubjectsJoin}, depNames(byName[TaskGenerateRecap], nameOf))
	assert.Equal(t, []string{TaskTopicsJoin}, depNames(byName[TaskIdentifyActionItems], nameOf))
	assert.Equal(t,
		[]string{TaskGenerateRecap, TaskGenerateTitle, TaskGenerateWaveform, TaskIdentifyActionItems},
		depNames(byName[TaskFinalize], nameOf))
	assert.Equal(t, []string{TaskFinalize}, depNames(byName[TaskCleanupConsent], nameOf))
	assert.Equal(t, []string{TaskCleanupConsent}, depNames(byName[TaskPostNotification], nameOf))
	assert.Equal(t, []string{TaskCleanupConsent}, depNames(byName[TaskSendWebhook], nameOf))
}

func TestRunSpecsBudgets(t *testing.T) {
	p := &Pipeline{cfg: testPipelineConfig()}
	byName, _ := specIndex(p.runSpecs(testManifest(3)))

	assert.Equal(t, 60.0, byName[TaskGetRecording].TimeoutSeconds)
	assert.Equal(t, 900.0, byName[TaskPaddingsJoin].TimeoutSeconds)
	assert.Equal(t, 600.0, byName[TaskIdentifyActionItems].TimeoutSeconds)
	assert.Equal(t, 300.0, byName[TaskSendWebhook].TimeoutSeconds)

	mixdown := byName[TaskMixdown]
	assert.Equal(t, pipelinetask.QueueCPU, mixdown.Queue)
	assert.Equal(t, "mixdown", mixdown.ConcurrencyKey)
	assert.Equal(t, 1, mixdown.MaxConcurrency)
	assert.Equal(t, 480.0, mixdown.TimeoutSeconds, "300 base + 60 per track, duration still unknown")

	assert.Equal(t, 5, byName[TaskPostNotification].MaxAttempts)
	assert.Equal(t, 5, byName[TaskSendWebhook].MaxAttempts)
	assert.Zero(t, byName[TaskFinalize].MaxAttempts, "defaulted by the queue")
}

func TestMixdownTimeoutSeconds(t *testing.T) {
	tests := []struct {
		tracks   int
		duration float64
		want     float64
	}{
		{1, 0, 360},
		{4, 0, 540},
		{2, 3600, 780},
		{0, 0, 300},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mixdownTimeoutSeconds(tt.tracks, tt.duration))
	}
}

func TestRegisterCoversEveryTask(t *testing.T) {
	p := &Pipeline{cfg: testPipelineConfig()}
	reg := queue.NewRegistry()
	p.Register(reg)

	for _, name := range []string{
		TaskGetRecording, TaskGetParticipants,
		TaskProcessPaddings, TaskPadTrack, TaskPaddingsJoin,
		TaskProcessTranscriptions, TaskTranscribeTrack, TaskTranscriptionsJoin,
		TaskMixdown, TaskDetectTopics, TaskTopicChunk, TaskTopicsJoin,
		TaskGenerateWaveform, TaskGenerateTitle,
		TaskExtractSubjects, TaskSummarizeSubject, TaskSubjectsJoin,
		TaskGenerateRecap, TaskIdentifyActionItems,
		TaskFinalize, TaskCleanupConsent,
		TaskPostNotification, TaskSendWebhook,
	} {
		_, ok := reg.Resolve(name)
		assert.True(t, ok, "no handler registered for %s", name)
	}
}

// Package pipeline turns a finished multitrack recording into a
// transcript. Tracks are padded back onto a common clock, transcribed
// and mixed in parallel, then the word stream fans out into topics,
// summaries, action items and notifications. Every step is a durable
// task row; a crashed pod re-drives its work and replayed steps
// converge on the same state.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/ent/transcript"
	"github.com/monadical-sas/reflector/pkg/asr"
	"github.com/monadical-sas/reflector/pkg/audio"
	"github.com/monadical-sas/reflector/pkg/config"
	"github.com/monadical-sas/reflector/pkg/events"
	"github.com/monadical-sas/reflector/pkg/llm"
	"github.com/monadical-sas/reflector/pkg/models"
	"github.com/monadical-sas/reflector/pkg/objectstore"
	"github.com/monadical-sas/reflector/pkg/platform"
	"github.com/monadical-sas/reflector/pkg/queue"
	"github.com/monadical-sas/reflector/pkg/services"
	"github.com/monadical-sas/reflector/pkg/webhook"
	"github.com/monadical-sas/reflector/pkg/zulip"
)

// Task names, as stored on pipeline task rows.
const (
	TaskGetRecording          = "get_recording"
	TaskGetParticipants       = "get_participants"
	TaskProcessPaddings       = "process_paddings"
	TaskPadTrack              = "pad_track"
	TaskPaddingsJoin          = "paddings_join"
	TaskProcessTranscriptions = "process_transcriptions"
	TaskTranscribeTrack       = "transcribe_track"
	TaskTranscriptionsJoin    = "transcriptions_join"
	TaskMixdown               = "mixdown"
	TaskDetectTopics          = "detect_topics"
	TaskTopicChunk            = "topic_chunk"
	TaskTopicsJoin            = "topics_join"
	TaskGenerateWaveform      = "generate_waveform"
	TaskGenerateTitle         = "generate_title"
	TaskExtractSubjects       = "extract_subjects"
	TaskSummarizeSubject      = "summarize_subject"
	TaskSubjectsJoin          = "subjects_join"
	TaskGenerateRecap         = "generate_recap"
	TaskIdentifyActionItems   = "identify_action_items"
	TaskFinalize              = "finalize"
	TaskCleanupConsent        = "cleanup_consent"
	TaskPostNotification      = "post_notification"
	TaskSendWebhook           = "send_webhook"
)

const (
	// One mixdown encode per cluster at a time; ffmpeg amix saturates
	// its node and concurrent encodes just thrash.
	mixdownKey            = "mixdown"
	mixdownMaxConcurrency = 1

	// Post-finalize deliveries get a longer retry budget since nothing
	// downstream waits on them.
	notificationAttempts = 5
)

// Deps groups the pipeline's collaborators to keep the constructor
// signature clean.
type Deps struct {
	Transcripts *services.TranscriptService
	Meetings    *services.MeetingService
	Publisher   *events.Publisher
	Store       *objectstore.Store
	Codec       *audio.Codec
	ASR         *asr.Client
	LLM         *llm.Client
	Platform    *platform.Client // nil when the platform API is not configured
	Zulip       *zulip.Service   // nil when notifications are disabled
	Webhook     *webhook.Sender
}

// Pipeline owns every task handler of the post-processing workflow.
type Pipeline struct {
	cfg         *config.Config
	client      *ent.Client
	transcripts *services.TranscriptService
	meetings    *services.MeetingService
	publisher   *events.Publisher
	store       *objectstore.Store
	codec       *audio.Codec
	asr         *asr.Client
	llm         *llm.Client
	platform    *platform.Client
	zulip       *zulip.Service
	webhook     *webhook.Sender
	logger      *slog.Logger
}

// New creates the pipeline frontend.
func New(cfg *config.Config, client *ent.Client, deps Deps) *Pipeline {
	return &Pipeline{
		cfg:         cfg,
		client:      client,
		transcripts: deps.Transcripts,
		meetings:    deps.Meetings,
		publisher:   deps.Publisher,
		store:       deps.Store,
		codec:       deps.Codec,
		asr:         deps.ASR,
		llm:         deps.LLM,
		platform:    deps.Platform,
		zulip:       deps.Zulip,
		webhook:     deps.Webhook,
		logger:      slog.Default().With("component", "pipeline"),
	}
}

// Register binds every task handler into the worker registry.
func (p *Pipeline) Register(reg *queue.Registry) {
	for name, h := range map[string]queue.Handler{
		TaskGetRecording:          p.getRecording,
		TaskGetParticipants:       p.getParticipants,
		TaskProcessPaddings:       p.processPaddings,
		TaskPadTrack:              p.padTrack,
		TaskPaddingsJoin:          p.paddingsJoin,
		TaskProcessTranscriptions: p.processTranscriptions,
		TaskTranscribeTrack:       p.transcribeTrack,
		TaskTranscriptionsJoin:    p.transcriptionsJoin,
		TaskMixdown:               p.mixdown,
		TaskDetectTopics:          p.detectTopics,
		TaskTopicChunk:            p.topicChunk,
		TaskTopicsJoin:            p.topicsJoin,
		TaskGenerateWaveform:      p.generateWaveform,
		TaskGenerateTitle:         p.generateTitle,
		TaskExtractSubjects:       p.extractSubjects,
		TaskSummarizeSubject:      p.summarizeSubject,
		TaskSubjectsJoin:          p.subjectsJoin,
		TaskGenerateRecap:         p.generateRecap,
		TaskIdentifyActionItems:   p.identifyActionItems,
		TaskFinalize:              p.finalize,
		TaskCleanupConsent:        p.cleanupConsent,
	} {
		reg.Register(name, p.instrument(h))
	}

	// Deliveries retry on their own budget and never fail the run or
	// flip the transcript to error.
	reg.Register(TaskPostNotification, p.instrumentNonFatal(p.postNotification))
	reg.Register(TaskSendWebhook, p.instrumentNonFatal(p.sendWebhook))
}

// Start validates the manifest, claims the transcript for a new workflow
// run and seeds the task DAG. Returns the run ID, or
// services.ErrActiveRun when a run is already in flight.
func (p *Pipeline) Start(ctx context.Context, manifest *models.RecordingManifest) (string, error) {
	if err := manifest.Validate(); err != nil {
		return "", fmt.Errorf("%w: %s", services.ErrInvalidInput, err)
	}
	logger := p.logger.With(
		"transcript_id", manifest.TranscriptID,
		"recording_id", manifest.RecordingID,
	)

	// 1. Create the transcript on first contact; a re-submission reuses it.
	req := services.CreateTranscriptRequest{
		ID:     manifest.TranscriptID,
		Name:   fmt.Sprintf("Recording %s", manifest.RecordingID),
		RoomID: manifest.RoomID,
	}
	if meeting, err := p.meetings.GetMeetingByRecordingID(ctx, manifest.RecordingID); err == nil {
		req.MeetingID = meeting.ID
		if req.RoomID == "" && meeting.RoomID != nil {
			req.RoomID = *meeting.RoomID
		}
	} else if !errors.Is(err, services.ErrNotFound) {
		logger.Warn("Meeting lookup failed, continuing without link", "error", err)
	}
	if _, err := p.transcripts.Create(ctx, req); err != nil && !errors.Is(err, services.ErrAlreadyExists) {
		return "", err
	}

	// 2. Claim a workflow run. One active run per transcript.
	workflowRunID := uuid.NewString()
	if err := p.transcripts.ClaimWorkflowRun(ctx, manifest.TranscriptID, workflowRunID); err != nil {
		return "", err
	}

	// 3. Seed the DAG and announce processing in one transaction.
	err := services.WithTx(ctx, p.client, func(tx *ent.Tx) error {
		if err := queue.EnqueueRun(ctx, tx, manifest.TranscriptID, workflowRunID, p.runSpecs(manifest)); err != nil {
			return err
		}
		return p.publisher.PublishStatusTx(ctx, tx, manifest.TranscriptID,
			events.StatusPayload{Value: string(transcript.StatusProcessing)},
			"status:processing:"+workflowRunID)
	})
	if err != nil {
		// Release the claim so a later submission can start clean.
		if _, uerr := p.transcripts.Update(ctx, manifest.TranscriptID, map[string]any{
			"workflow_run_id": nil,
			"status":          transcript.StatusIdle,
		}); uerr != nil {
			logger.Error("Failed to release workflow claim after enqueue failure", "error", uerr)
		}
		return "", fmt.Errorf("enqueue workflow: %w", err)
	}

	logger.Info("Workflow enqueued",
		"workflow_run_id", workflowRunID, "tracks", len(manifest.Tracks))
	return workflowRunID, nil
}

// runSpecs lays out the task DAG for one recording. Fan-out children
// (pad_track, transcribe_track, topic_chunk, summarize_subject) are
// inserted at runtime by their parent tasks; everything here is static.
func (p *Pipeline) runSpecs(manifest *models.RecordingManifest) []queue.TaskSpec {
	pc := &p.cfg.Pipeline
	short := pc.TimeoutShort.Seconds()
	medium := pc.TimeoutMedium.Seconds()
	long := pc.TimeoutLong.Seconds()
	heavy := pc.TimeoutHeavy.Seconds()

	var (
		getRecording     = queue.NewTaskID()
		getParticipants  = queue.NewTaskID()
		processPaddings  = queue.NewTaskID()
		paddingsJoin     = queue.NewTaskID()
		processTranscr   = queue.NewTaskID()
		transcrJoin      = queue.NewTaskID()
		mixdown          = queue.NewTaskID()
		detectTopics     = queue.NewTaskID()
		topicsJoin       = queue.NewTaskID()
		generateWaveform = queue.NewTaskID()
		generateTitle    = queue.NewTaskID()
		extractSubjects  = queue.NewTaskID()
		subjectsJoin     = queue.NewTaskID()
		generateRecap    = queue.NewTaskID()
		actionItems      = queue.NewTaskID()
		finalize         = queue.NewTaskID()
		cleanupConsent   = queue.NewTaskID()
		postNotification = queue.NewTaskID()
		sendWebhook      = queue.NewTaskID()
	)

	return []queue.TaskSpec{
		{ID: getRecording, Name: TaskGetRecording, Params: manifest, TimeoutSeconds: short},
		{ID: getParticipants, Name: TaskGetParticipants, TimeoutSeconds: short,
			Params:    participantsParams{MeetingSessionID: manifest.MeetingSessionID, Tracks: len(manifest.Tracks)},
			DependsOn: []string{getRecording}},
		{ID: processPaddings, Name: TaskProcessPaddings, TimeoutSeconds: short,
			DependsOn: []string{getParticipants}},
		{ID: paddingsJoin, Name: TaskPaddingsJoin, TimeoutSeconds: heavy,
			DependsOn: []string{processPaddings}},
		{ID: processTranscr, Name: TaskProcessTranscriptions, TimeoutSeconds: short,
			DependsOn: []string{paddingsJoin}},
		{ID: transcrJoin, Name: TaskTranscriptionsJoin, TimeoutSeconds: heavy,
			DependsOn: []string{processTranscr}},
		// The duration term is folded in by paddings_join once the real
		// duration is known; the row is still waiting at that point.
		{ID: mixdown, Name: TaskMixdown, Queue: pipelinetask.QueueCPU, TimeoutSeconds: mixdownTimeoutSeconds(len(manifest.Tracks), 0),
			ConcurrencyKey: mixdownKey, MaxConcurrency: mixdownMaxConcurrency,
			DependsOn: []string{paddingsJoin}},
		{ID: detectTopics, Name: TaskDetectTopics, TimeoutSeconds: short,
			DependsOn: []string{transcrJoin}},
		{ID: topicsJoin, Name: TaskTopicsJoin, TimeoutSeconds: heavy,
			DependsOn: []string{detectTopics}},
		{ID: generateWaveform, Name: TaskGenerateWaveform, TimeoutSeconds: medium,
			DependsOn: []string{mixdown}},
		{ID: generateTitle, Name: TaskGenerateTitle, TimeoutSeconds: medium,
			DependsOn: []string{topicsJoin}},
		{ID: extractSubjects, Name: TaskExtractSubjects, TimeoutSeconds: medium,
			DependsOn: []string{topicsJoin}},
		{ID: subjectsJoin, Name: TaskSubjectsJoin, TimeoutSeconds: heavy,
			DependsOn: []string{extractSubjects}},
		{ID: generateRecap, Name: TaskGenerateRecap, TimeoutSeconds: medium,
			DependsOn: []string{subjectsJoin}},
		{ID: actionItems, Name: TaskIdentifyActionItems, TimeoutSeconds: long,
			DependsOn: []string{topicsJoin}},
		{ID: finalize, Name: TaskFinalize, TimeoutSeconds: short,
			DependsOn: []string{generateWaveform, generateTitle, generateRecap, actionItems}},
		{ID: cleanupConsent, Name: TaskCleanupConsent, TimeoutSeconds: medium,
			DependsOn: []string{finalize}},
		{ID: postNotification, Name: TaskPostNotification, TimeoutSeconds: short,
			MaxAttempts: notificationAttempts, DependsOn: []string{cleanupConsent}},
		{ID: sendWebhook, Name: TaskSendWebhook, TimeoutSeconds: medium,
			MaxAttempts: notificationAttempts, DependsOn: []string{cleanupConsent}},
	}
}

// mixdownTimeoutSeconds scales the encode budget with input size:
// 300 s base + 60 s per track + 0.1 s per second of audio.
func mixdownTimeoutSeconds(tracks int, durationSeconds float64) float64 {
	return 300 + 60*float64(tracks) + 0.1*durationSeconds
}

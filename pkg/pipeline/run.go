package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/pkg/models"
	"github.com/monadical-sas/reflector/pkg/queue"
	"github.com/monadical-sas/reflector/pkg/services"
)

// Params and results travel as JSON on task rows, so replays and
// dependents read them back from the database instead of any in-memory
// handoff.

type participantsParams struct {
	MeetingSessionID string `json:"meeting_session_id,omitempty"`
	Tracks           int    `json:"tracks"`
}

// recordingInfo is the get_recording result: the source inventory every
// later stage works from. The manifest stays authoritative for keys;
// the platform only enriches duration.
type recordingInfo struct {
	Bucket          string   `json:"bucket"`
	TrackKeys       []string `json:"track_keys"`
	DurationSeconds float64  `json:"duration_seconds,omitempty"`
}

type padTrackParams struct {
	TrackIndex int    `json:"track_index"`
	Bucket     string `json:"bucket"`
	S3Key      string `json:"s3_key"`
}

// paddedTrack points at the clock-aligned rendition of one track. A
// track that needed no padding points straight at its source object.
type paddedTrack struct {
	TrackIndex int    `json:"track_index"`
	Bucket     string `json:"bucket"`
	PaddedKey  string `json:"padded_key"`
	Size       int64  `json:"size"`
}

type paddedTracks struct {
	Tracks []paddedTrack `json:"tracks"`
}

type transcribeParams struct {
	TrackIndex int    `json:"track_index"`
	Bucket     string `json:"bucket"`
	PaddedKey  string `json:"padded_key"`
	Language   string `json:"language"`
}

type transcribeResult struct {
	TrackIndex int           `json:"track_index"`
	Words      []models.Word `json:"words"`
}

type mixdownResult struct {
	AudioKey    string  `json:"audio_key"`
	DurationMS  float64 `json:"duration_ms"`
	TracksMixed int     `json:"tracks_mixed"`
}

type topicChunkParams struct {
	ChunkIndex int           `json:"chunk_index"`
	Text       string        `json:"text"`
	Timestamp  float64       `json:"timestamp"`
	Duration   float64       `json:"duration"`
	Words      []models.Word `json:"words"`
}

type topicChunkResult struct {
	ChunkIndex int    `json:"chunk_index"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
}

type subjectParams struct {
	SubjectIndex int    `json:"subject_index"`
	Subject      string `json:"subject"`
}

type subjectResult struct {
	SubjectIndex int    `json:"subject_index"`
	Subject      string `json:"subject"`
	Paragraph    string `json:"paragraph"`
}

// countResult is the completion marker for fan-out parents and plain
// gate joins.
type countResult struct {
	Count int `json:"count"`
}

// taskByName returns the run's single task with the given name. Claimed
// task entities are detached from any live transaction, so every graph
// read goes through a fresh query here.
func (p *Pipeline) taskByName(ctx context.Context, workflowRunID, name string) (*ent.PipelineTask, error) {
	task, err := p.client.PipelineTask.Query().
		Where(
			pipelinetask.WorkflowRunIDEQ(workflowRunID),
			pipelinetask.NameEQ(name),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("load task %q of run %s: %w", name, workflowRunID, err)
	}
	return task, nil
}

// completedByName returns every completed task with the given name,
// i.e. the fan-out children feeding a join.
func (p *Pipeline) completedByName(ctx context.Context, workflowRunID, name string) ([]*ent.PipelineTask, error) {
	tasks, err := p.client.PipelineTask.Query().
		Where(
			pipelinetask.WorkflowRunIDEQ(workflowRunID),
			pipelinetask.NameEQ(name),
			pipelinetask.StatusEQ(pipelinetask.StatusCompleted),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %q tasks of run %s: %w", name, workflowRunID, err)
	}
	return tasks, nil
}

// manifestForRun reloads the recording manifest from the ingress task's
// params.
func (p *Pipeline) manifestForRun(ctx context.Context, workflowRunID string) (*models.RecordingManifest, error) {
	task, err := p.taskByName(ctx, workflowRunID, TaskGetRecording)
	if err != nil {
		return nil, err
	}
	var manifest models.RecordingManifest
	if err := queue.DecodeParams(task, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// recordingForRun loads the source inventory produced by get_recording.
func (p *Pipeline) recordingForRun(ctx context.Context, workflowRunID string) (*recordingInfo, error) {
	task, err := p.taskByName(ctx, workflowRunID, TaskGetRecording)
	if err != nil {
		return nil, err
	}
	var info recordingInfo
	if err := queue.DecodeResult(task, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// paddedTracksForRun loads the aligned track list assembled by
// paddings_join, sorted by track index.
func (p *Pipeline) paddedTracksForRun(ctx context.Context, workflowRunID string) ([]paddedTrack, error) {
	task, err := p.taskByName(ctx, workflowRunID, TaskPaddingsJoin)
	if err != nil {
		return nil, err
	}
	var padded paddedTracks
	if err := queue.DecodeResult(task, &padded); err != nil {
		return nil, err
	}
	return padded.Tracks, nil
}

// transcribedTracks decodes every transcribe_track result in track
// order.
func (p *Pipeline) transcribedTracks(ctx context.Context, workflowRunID string) ([]transcribeResult, error) {
	children, err := p.completedByName(ctx, workflowRunID, TaskTranscribeTrack)
	if err != nil {
		return nil, err
	}
	results := make([]transcribeResult, 0, len(children))
	for _, child := range children {
		var res transcribeResult
		if err := queue.DecodeResult(child, &res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].TrackIndex < results[j].TrackIndex })
	return results, nil
}

// mergedWords rebuilds the meeting-wide word stream: track word lists
// concatenated in track order, then stably sorted by start time so
// words starting together keep track order.
func (p *Pipeline) mergedWords(ctx context.Context, workflowRunID string) ([]models.Word, error) {
	tracks, err := p.transcribedTracks(ctx, workflowRunID)
	if err != nil {
		return nil, err
	}
	var words []models.Word
	for _, track := range tracks {
		words = append(words, track.Words...)
	}
	models.SortWordsByStart(words)
	return words, nil
}

// speakerLines renders the word stream as dialogue, one line per
// speaker turn.
func speakerLines(words []models.Word, participants []*ent.Participant) string {
	var b strings.Builder
	speaker := -1
	for _, w := range words {
		if w.Speaker != speaker {
			if speaker != -1 {
				b.WriteByte('\n')
			}
			speaker = w.Speaker
			b.WriteString(services.SpeakerName(participants, speaker))
			b.WriteString(": ")
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(w.Text)
	}
	return b.String()
}

// presign mints a read URL with the configured TTL.
func (p *Pipeline) presign(ctx context.Context, bucket, key string) (string, error) {
	return p.store.PresignGet(ctx, bucket, key, p.cfg.Pipeline.PresignedURLTTL)
}

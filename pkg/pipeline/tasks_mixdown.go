package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/pkg/events"
	"github.com/monadical-sas/reflector/pkg/models"
	"github.com/monadical-sas/reflector/pkg/queue"
)

const (
	mixdownContentType = "audio/mpeg"

	// fallbackSampleRate is used when no track yields a decodable rate;
	// the mix itself will still fail cleanly if nothing decodes.
	fallbackSampleRate = 48000
)

// mixdown renders every aligned track into the single browseable MP3.
// Runs on the cpu queue under the cluster-wide mixdown cap; the aligned
// inputs need no per-track delays.
func (p *Pipeline) mixdown(ctx context.Context, task *ent.PipelineTask) (any, error) {
	tracks, err := p.paddedTracksForRun(ctx, task.WorkflowRunID)
	if err != nil {
		return nil, err
	}

	sources := make([]string, 0, len(tracks))
	for _, track := range tracks {
		url, err := p.presign(ctx, track.Bucket, track.PaddedKey)
		if err != nil {
			return nil, fmt.Errorf("presign track %d: %w", track.TrackIndex, err)
		}
		sources = append(sources, url)
	}

	rate, ok := p.codec.DetectSampleRate(ctx, sources)
	if !ok {
		p.logger.Warn("No decodable sample rate, assuming fallback",
			"transcript_id", task.TranscriptID, "rate", fallbackSampleRate)
		rate = fallbackSampleRate
	}

	scratch, err := os.CreateTemp("", "mix-*.mp3")
	if err != nil {
		return nil, fmt.Errorf("create scratch file: %w", err)
	}
	scratchPath := scratch.Name()
	scratch.Close()
	defer os.Remove(scratchPath)

	durationMS, err := p.codec.Mix(ctx, sources, scratchPath, rate, nil)
	if err != nil {
		return nil, fmt.Errorf("mix %d tracks: %w", len(sources), err)
	}

	f, err := os.Open(scratchPath)
	if err != nil {
		return nil, fmt.Errorf("open mixed audio: %w", err)
	}
	defer f.Close()

	key := models.MixedAudioKey(task.TranscriptID)
	if err := p.store.Put(ctx, p.store.Bucket(), key, f, mixdownContentType); err != nil {
		return nil, fmt.Errorf("upload mixed audio: %w", err)
	}

	p.logger.Info("Mixdown complete",
		"transcript_id", task.TranscriptID,
		"tracks", len(sources),
		"duration_ms", durationMS)
	return mixdownResult{
		AudioKey:    key,
		DurationMS:  durationMS,
		TracksMixed: len(sources),
	}, nil
}

// waveformResult records where the rendered peaks landed.
type waveformResult struct {
	Segments int    `json:"segments"`
	Path     string `json:"path"`
}

// generateWaveform renders the player's peak envelope from the mixed
// audio and writes it next to the transcript's other local artifacts.
// The WAVEFORM event has no paired database write, so it publishes in
// its own transaction.
func (p *Pipeline) generateWaveform(ctx context.Context, task *ent.PipelineTask) (any, error) {
	mixTask, err := p.taskByName(ctx, task.WorkflowRunID, TaskMixdown)
	if err != nil {
		return nil, err
	}
	var mix mixdownResult
	if err := queue.DecodeResult(mixTask, &mix); err != nil {
		return nil, err
	}

	audioURL, err := p.presign(ctx, p.store.Bucket(), mix.AudioKey)
	if err != nil {
		return nil, fmt.Errorf("presign mixed audio: %w", err)
	}

	peaks, err := p.codec.WaveformPeaks(ctx, audioURL, p.cfg.Pipeline.WaveformSegments)
	if err != nil {
		return nil, fmt.Errorf("render waveform: %w", err)
	}

	payload := events.WaveformPayload{Waveform: peaks}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal waveform: %w", err)
	}

	dir := filepath.Join(p.cfg.DataDir, task.TranscriptID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(dir, "audio.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write waveform: %w", err)
	}

	if err := p.publisher.PublishWaveform(ctx, task.TranscriptID, payload); err != nil {
		return nil, err
	}

	return waveformResult{Segments: len(peaks), Path: path}, nil
}

package audio

import (
	"context"
	"fmt"
	"math"
)

// PadWithSilence transcodes source into a WebM/Opus file at dst with
// offsetSeconds of leading stereo silence. ffmpeg streams the input,
// so source may be a presigned URL and is never buffered whole.
func (c *Codec) PadWithSilence(ctx context.Context, source, dst string, offsetSeconds float64) error {
	ms := OffsetMS(offsetSeconds)
	if ms <= 0 {
		return fmt.Errorf("pad: offset must be positive, got %gs", offsetSeconds)
	}
	if _, err := c.run(ctx, c.ffmpegBin, padArgs(source, dst, ms)); err != nil {
		return fmt.Errorf("pad: %w", err)
	}
	return nil
}

// Mix combines sources into a single MP3 at sink and returns its
// duration in milliseconds, rounded to two decimals. Sources that fail
// to probe are logged and skipped; when none survive the mix fails
// with ErrNoDecodableAudio. offsets, when given, delay each input by
// its meeting-start offset.
func (c *Codec) Mix(ctx context.Context, sources []string, sink string, targetRate int, offsets []float64) (float64, error) {
	if targetRate <= 0 {
		return 0, fmt.Errorf("mix: target rate must be positive, got %d", targetRate)
	}

	var (
		usable     []string
		usableOffs []float64
	)
	for i, source := range sources {
		if _, err := c.Probe(ctx, source); err != nil {
			c.logger.Warn("skipping undecodable source", "index", i, "error", err)
			continue
		}
		var offset float64
		if i < len(offsets) {
			offset = offsets[i]
		}
		usable = append(usable, source)
		usableOffs = append(usableOffs, offset)
	}
	if len(usable) == 0 {
		return 0, ErrNoDecodableAudio
	}

	graph := MixGraph(len(usable), usableOffs, targetRate)
	if _, err := c.run(ctx, c.ffmpegBin, mixArgs(usable, sink, graph)); err != nil {
		return 0, fmt.Errorf("mix: %w", err)
	}

	// Duration is measured from the encoded output, not estimated from
	// the inputs.
	info, err := c.Probe(ctx, sink)
	if err != nil {
		return 0, fmt.Errorf("mix: probe output: %w", err)
	}
	return roundHundredths(info.DurationSeconds * 1000), nil
}

func padArgs(source, dst string, offsetMS int) []string {
	return []string{
		"-y", "-v", "error",
		"-i", source,
		"-vn",
		"-af", PadGraph(offsetMS).Render(),
		"-c:a", "libopus",
		"-f", "webm",
		dst,
	}
}

func mixArgs(sources []string, sink string, graph Graph) []string {
	args := []string{"-y", "-v", "error"}
	for _, source := range sources {
		args = append(args, "-i", source)
	}
	return append(args,
		"-filter_complex", graph.Render(),
		"-map", "[mix]",
		"-c:a", "libmp3lame",
		"-f", "mp3",
		sink,
	)
}

func roundHundredths(x float64) float64 {
	return math.Round(x*100) / 100
}

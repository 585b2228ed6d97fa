package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// waveformSampleRate is the mono decode rate for peak extraction.
// Peaks need the amplitude envelope, not fidelity.
const waveformSampleRate = 16000

// WaveformPeaks decodes source to raw PCM and returns a fixed-length
// vector of per-segment peak magnitudes normalized to [0,1]. The
// vector always has exactly segments entries; segments beyond the
// decoded audio stay 0. The decode is consumed as a stream, never
// buffered whole.
func (c *Codec) WaveformPeaks(ctx context.Context, source string, segments int) ([]float64, error) {
	if segments <= 0 {
		return nil, fmt.Errorf("waveform: segments must be positive, got %d", segments)
	}

	info, err := c.Probe(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("waveform: %w", err)
	}
	if info.DurationSeconds <= 0 {
		return nil, fmt.Errorf("waveform %q: zero duration", source)
	}
	totalSamples := int64(math.Ceil(info.DurationSeconds * waveformSampleRate))

	args := []string{
		"-v", "error",
		"-i", source,
		"-vn",
		"-ac", "1",
		"-ar", strconv.Itoa(waveformSampleRate),
		"-f", "s16le",
		"-c:a", "pcm_s16le",
		"pipe:1",
	}
	cmd := exec.CommandContext(ctx, c.ffmpegBin, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("waveform: %w", err)
	}
	if err := cmd.Start(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", c.ffmpegBin, ErrBinaryNotFound)
		}
		return nil, fmt.Errorf("waveform: %w", err)
	}

	peaks := streamPeaks(stdout, totalSamples, segments)

	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("waveform: ffmpeg failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return peaks, nil
}

// streamPeaks buckets s16le samples into segments, keeping the max
// absolute magnitude per bucket scaled by the s16 range. Samples past
// the estimated total clamp into the last bucket.
func streamPeaks(r io.Reader, totalSamples int64, segments int) []float64 {
	peaks := make([]float64, segments)
	perSegment := (totalSamples + int64(segments) - 1) / int64(segments)
	if perSegment < 1 {
		perSegment = 1
	}

	var idx int64
	buf := make([]byte, 32*1024)
	carry := 0
	for {
		n, err := r.Read(buf[carry:])
		n += carry

		pcm := buf[:n]
		for len(pcm) >= 2 {
			sample := int16(binary.LittleEndian.Uint16(pcm))
			pcm = pcm[2:]

			v := float64(sample)
			if v < 0 {
				v = -v
			}
			v /= 32768.0

			seg := idx / perSegment
			if seg >= int64(segments) {
				seg = int64(segments) - 1
			}
			if v > peaks[seg] {
				peaks[seg] = v
			}
			idx++
		}

		// an odd trailing byte is half a sample, keep it for the next read
		carry = len(pcm)
		if carry > 0 {
			buf[0] = pcm[0]
		}
		if err != nil {
			return peaks
		}
	}
}

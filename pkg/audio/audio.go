// Package audio drives ffmpeg and ffprobe as subprocesses for every
// codec operation the pipeline needs: probing container metadata,
// padding tracks with leading silence, mixing N tracks into one MP3,
// and extracting waveform peaks from decoded PCM.
package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/monadical-sas/reflector/pkg/config"
)

var (
	// ErrBinaryNotFound is returned when ffmpeg or ffprobe is not on PATH.
	ErrBinaryNotFound = errors.New("codec binary not found")

	// ErrNoAudioStream is returned when a probed source has no audio stream.
	ErrNoAudioStream = errors.New("no audio stream found")

	// ErrNoDecodableAudio is returned when every source of a mix or
	// sample-rate probe fails to decode.
	ErrNoDecodableAudio = errors.New("no decodable audio in any source")
)

const checkTimeout = 5 * time.Second

// Codec wraps the ffmpeg and ffprobe binaries. Sources may be local
// paths or presigned URLs; ffmpeg streams either.
type Codec struct {
	ffmpegBin  string
	ffprobeBin string
	logger     *slog.Logger
}

// New creates a Codec from configuration. Empty binary paths fall back
// to PATH lookup.
func New(cfg config.AudioConfig) *Codec {
	if cfg.FFmpegBin == "" {
		cfg.FFmpegBin = "ffmpeg"
	}
	if cfg.FFprobeBin == "" {
		cfg.FFprobeBin = "ffprobe"
	}
	return &Codec{
		ffmpegBin:  cfg.FFmpegBin,
		ffprobeBin: cfg.FFprobeBin,
		logger:     slog.Default().With("component", "audio"),
	}
}

// CheckAvailable verifies both binaries run. Called once at startup so
// a missing install fails fast instead of failing the first pipeline.
func (c *Codec) CheckAvailable(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	for _, bin := range []string{c.ffmpegBin, c.ffprobeBin} {
		if err := exec.CommandContext(ctx, bin, "-version").Run(); err != nil {
			var execErr *exec.Error
			if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
				return fmt.Errorf("%s: %w", bin, ErrBinaryNotFound)
			}
			return fmt.Errorf("%s check failed: %w", bin, err)
		}
	}
	return nil
}

// run executes a codec binary, returning stdout. Stderr is captured
// and folded into the error.
func (c *Codec) run(ctx context.Context, bin string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debug("running codec binary", "bin", filepath.Base(bin), "args", args)

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%s timed out: %w", filepath.Base(bin), context.DeadlineExceeded)
		}
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", bin, ErrBinaryNotFound)
		}
		return nil, fmt.Errorf("%s failed: %w: %s", filepath.Base(bin), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

package audio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/pkg/config"
)

func TestPadArgs(t *testing.T) {
	args := padArgs("https://store/track_0.webm?sig=abc", "/tmp/padded_0.webm", 1500)
	assert.Equal(t, []string{
		"-y", "-v", "error",
		"-i", "https://store/track_0.webm?sig=abc",
		"-vn",
		"-af", "adelay=delays=1500:all=1,aformat=sample_fmts=s16:channel_layouts=stereo",
		"-c:a", "libopus",
		"-f", "webm",
		"/tmp/padded_0.webm",
	}, args)
}

func TestMixArgs(t *testing.T) {
	graph := MixGraph(2, nil, 48000)
	args := mixArgs([]string{"a.webm", "b.webm"}, "/tmp/audio.mp3", graph)
	assert.Equal(t, []string{
		"-y", "-v", "error",
		"-i", "a.webm",
		"-i", "b.webm",
		"-filter_complex", graph.Render(),
		"-map", "[mix]",
		"-c:a", "libmp3lame",
		"-f", "mp3",
		"/tmp/audio.mp3",
	}, args)
}

func TestPadWithSilence_RejectsNonPositiveOffset(t *testing.T) {
	c := New(config.AudioConfig{})
	err := c.PadWithSilence(context.Background(), "in.webm", "out.webm", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset must be positive")

	err = c.PadWithSilence(context.Background(), "in.webm", "out.webm", -1.5)
	require.Error(t, err)
}

func TestMix_RejectsBadTargetRate(t *testing.T) {
	c := New(config.AudioConfig{})
	_, err := c.Mix(context.Background(), []string{"a.webm"}, "out.mp3", 0, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target rate")
}

func TestRoundHundredths(t *testing.T) {
	assert.InDelta(t, 1500.0, roundHundredths(1500.0), 1e-9)
	assert.InDelta(t, 83123.46, roundHundredths(83123.4567), 1e-9)
	assert.InDelta(t, 0.0, roundHundredths(0.0041), 1e-9)
	assert.InDelta(t, 125400.0, roundHundredths(125399.999), 1e-9)
}

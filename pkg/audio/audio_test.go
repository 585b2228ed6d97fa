package audio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/pkg/config"
)

func TestNew_Defaults(t *testing.T) {
	c := New(config.AudioConfig{})
	assert.Equal(t, "ffmpeg", c.ffmpegBin)
	assert.Equal(t, "ffprobe", c.ffprobeBin)

	c = New(config.AudioConfig{FFmpegBin: "/opt/ffmpeg/bin/ffmpeg", FFprobeBin: "/opt/ffmpeg/bin/ffprobe"})
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", c.ffmpegBin)
	assert.Equal(t, "/opt/ffmpeg/bin/ffprobe", c.ffprobeBin)
}

func TestCheckAvailable_MissingBinary(t *testing.T) {
	c := New(config.AudioConfig{FFmpegBin: "reflector-test-no-such-ffmpeg"})
	err := c.CheckAvailable(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBinaryNotFound)
}

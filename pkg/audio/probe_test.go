package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64ptr(v int64) *int64 { return &v }

func TestParseProbeOutput(t *testing.T) {
	out := []byte(`{
		"streams": [
			{
				"index": 0,
				"codec_name": "opus",
				"codec_type": "audio",
				"sample_rate": "48000",
				"channels": 2,
				"time_base": "1/1000",
				"start_pts": 1500,
				"start_time": "1.500000"
			}
		],
		"format": {
			"format_name": "matroska,webm",
			"duration": "125.400000"
		}
	}`)

	info, err := parseProbeOutput(out, "track_0.webm")
	require.NoError(t, err)
	assert.Equal(t, "opus", info.CodecName)
	assert.Equal(t, 48000, info.SampleRate)
	assert.Equal(t, 2, info.Channels)
	assert.Equal(t, "1/1000", info.TimeBase)
	require.NotNil(t, info.StartPTS)
	assert.Equal(t, int64(1500), *info.StartPTS)
	assert.InDelta(t, 125.4, info.DurationSeconds, 1e-9)
}

func TestParseProbeOutput_NoAudioStream(t *testing.T) {
	out := []byte(`{"streams": [], "format": {"format_name": "webm"}}`)
	_, err := parseProbeOutput(out, "video_only.webm")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoAudioStream)
	assert.Contains(t, err.Error(), "video_only.webm")
}

func TestParseProbeOutput_StreamDurationFallback(t *testing.T) {
	out := []byte(`{
		"streams": [{"codec_type": "audio", "sample_rate": "44100", "duration": "12.5"}],
		"format": {"format_name": "mp3"}
	}`)
	info, err := parseProbeOutput(out, "a.mp3")
	require.NoError(t, err)
	assert.InDelta(t, 12.5, info.DurationSeconds, 1e-9)
}

func TestExtractStartOffset(t *testing.T) {
	tests := []struct {
		name string
		info *ContainerInfo
		want float64
	}{
		{
			"pts times time base",
			&ContainerInfo{StartPTS: int64ptr(1500), TimeBase: "1/1000"},
			1.5,
		},
		{
			"high resolution clock",
			&ContainerInfo{StartPTS: int64ptr(72000), TimeBase: "1/48000"},
			1.5,
		},
		{
			"negative offset clamps to zero",
			&ContainerInfo{StartPTS: int64ptr(-240), TimeBase: "1/48000"},
			0,
		},
		{
			"missing pts falls back to start_time",
			&ContainerInfo{TimeBase: "1/1000", StartTime: "2.500000"},
			2.5,
		},
		{
			"broken time base falls back to start_time",
			&ContainerInfo{StartPTS: int64ptr(1500), TimeBase: "0/0", StartTime: "3.25"},
			3.25,
		},
		{
			"negative start_time clamps to zero",
			&ContainerInfo{StartTime: "-0.75"},
			0,
		},
		{
			"no metadata at all",
			&ContainerInfo{},
			0,
		},
		{
			"nil info",
			nil,
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ExtractStartOffset(tt.info), 1e-9)
		})
	}
}

func TestParseTimeBase(t *testing.T) {
	num, den, ok := parseTimeBase("1/48000")
	require.True(t, ok)
	assert.Equal(t, int64(1), num)
	assert.Equal(t, int64(48000), den)

	for _, bad := range []string{"", "48000", "1/0", "a/b", "1/2/3"} {
		_, _, ok := parseTimeBase(bad)
		assert.False(t, ok, "time base %q should not parse", bad)
	}
}

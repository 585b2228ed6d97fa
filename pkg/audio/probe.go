package audio

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ContainerInfo is the probed metadata of a source's first audio
// stream plus its container-level duration.
type ContainerInfo struct {
	CodecName  string
	SampleRate int
	Channels   int

	// StartPTS and TimeBase carry the raw stream clock; StartTime is
	// ffprobe's pre-multiplied seconds value, kept as reported.
	StartPTS  *int64
	TimeBase  string
	StartTime string

	DurationSeconds float64
}

// ffprobe -print_format json output, trimmed to the fields we read.
type probeOutput struct {
	Streams []probeStream `json:"streams"`
	Format  probeFormat   `json:"format"`
}

type probeStream struct {
	CodecType  string `json:"codec_type"`
	CodecName  string `json:"codec_name"`
	SampleRate string `json:"sample_rate"`
	Channels   int    `json:"channels"`
	StartPTS   *int64 `json:"start_pts"`
	TimeBase   string `json:"time_base"`
	StartTime  string `json:"start_time"`
	Duration   string `json:"duration"`
}

type probeFormat struct {
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
}

// Probe runs ffprobe against a local path or presigned URL and returns
// the first audio stream's metadata. A source with no audio stream
// fails with ErrNoAudioStream.
func (c *Codec) Probe(ctx context.Context, source string) (*ContainerInfo, error) {
	args := []string{
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		"-select_streams", "a:0",
		source,
	}
	out, err := c.run(ctx, c.ffprobeBin, args)
	if err != nil {
		return nil, fmt.Errorf("probe: %w", err)
	}
	return parseProbeOutput(out, source)
}

func parseProbeOutput(out []byte, source string) (*ContainerInfo, error) {
	var probed probeOutput
	if err := json.Unmarshal(out, &probed); err != nil {
		return nil, fmt.Errorf("probe: parse ffprobe output: %w", err)
	}
	if len(probed.Streams) == 0 {
		return nil, fmt.Errorf("probe %q: %w", source, ErrNoAudioStream)
	}

	stream := probed.Streams[0]
	info := &ContainerInfo{
		CodecName: stream.CodecName,
		Channels:  stream.Channels,
		StartPTS:  stream.StartPTS,
		TimeBase:  stream.TimeBase,
		StartTime: stream.StartTime,
	}
	if rate, err := strconv.Atoi(stream.SampleRate); err == nil {
		info.SampleRate = rate
	}
	if d, err := strconv.ParseFloat(probed.Format.Duration, 64); err == nil {
		info.DurationSeconds = d
	} else if d, err := strconv.ParseFloat(stream.Duration, 64); err == nil {
		info.DurationSeconds = d
	}
	return info, nil
}

// DetectSampleRate probes sources in order and returns the first
// decodable audio stream's rate. Returns false when every probe fails;
// individual failures are logged and skipped.
func (c *Codec) DetectSampleRate(ctx context.Context, sources []string) (int, bool) {
	for i, source := range sources {
		info, err := c.Probe(ctx, source)
		if err != nil {
			c.logger.Warn("sample rate probe failed, skipping source", "index", i, "error", err)
			continue
		}
		if info.SampleRate > 0 {
			return info.SampleRate, true
		}
	}
	return 0, false
}

// ExtractStartOffset returns the gap in seconds between meeting t=0 and
// the first sample of the probed track: max(0, start_pts × time_base)
// when the stream clock is present, falling back to ffprobe's start_time
// seconds, else 0. Negative offsets are treated as 0.
func ExtractStartOffset(info *ContainerInfo) float64 {
	if info == nil {
		return 0
	}
	var offset float64
	if num, den, ok := parseTimeBase(info.TimeBase); ok && info.StartPTS != nil {
		offset = float64(*info.StartPTS) * float64(num) / float64(den)
	} else if s, err := strconv.ParseFloat(info.StartTime, 64); err == nil {
		offset = s
	}
	if offset < 0 {
		return 0
	}
	return offset
}

func parseTimeBase(tb string) (num, den int64, ok bool) {
	parts := strings.SplitN(tb, "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	num, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	den, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil || den == 0 {
		return 0, 0, false
	}
	return num, den, true
}

package audio

import (
	"bytes"
	"encoding/binary"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pcmBytes(samples ...int16) []byte {
	buf := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
	}
	return buf
}

func TestStreamPeaks(t *testing.T) {
	t.Run("per segment max of absolute magnitude", func(t *testing.T) {
		pcm := pcmBytes(1000, -2000, 3000, -32768)
		peaks := streamPeaks(bytes.NewReader(pcm), 4, 2)

		require.Len(t, peaks, 2)
		assert.InDelta(t, 2000.0/32768.0, peaks[0], 1e-9)
		assert.InDelta(t, 1.0, peaks[1], 1e-9)
	})

	t.Run("short audio zero fills the tail", func(t *testing.T) {
		pcm := pcmBytes(16384, -16384)
		peaks := streamPeaks(bytes.NewReader(pcm), 2, 4)

		require.Len(t, peaks, 4)
		assert.InDelta(t, 0.5, peaks[0], 1e-9)
		assert.InDelta(t, 0.5, peaks[1], 1e-9)
		assert.Zero(t, peaks[2])
		assert.Zero(t, peaks[3])
	})

	t.Run("samples past the estimate clamp into the last segment", func(t *testing.T) {
		// estimate said 4 samples but 6 decode
		pcm := pcmBytes(100, 100, 100, 100, 100, 32767)
		peaks := streamPeaks(bytes.NewReader(pcm), 4, 2)

		require.Len(t, peaks, 2)
		assert.InDelta(t, 100.0/32768.0, peaks[0], 1e-9)
		assert.InDelta(t, 32767.0/32768.0, peaks[1], 1e-9)
	})

	t.Run("odd trailing byte is dropped", func(t *testing.T) {
		pcm := append(pcmBytes(8192), 0x7f)
		peaks := streamPeaks(bytes.NewReader(pcm), 1, 1)

		require.Len(t, peaks, 1)
		assert.InDelta(t, 0.25, peaks[0], 1e-9)
	})

	t.Run("single byte reads keep sample alignment", func(t *testing.T) {
		pcm := pcmBytes(1000, -2000, 3000, -4000)
		whole := streamPeaks(bytes.NewReader(pcm), 4, 2)
		chunked := streamPeaks(iotest.OneByteReader(bytes.NewReader(pcm)), 4, 2)

		assert.Equal(t, whole, chunked)
	})

	t.Run("empty input yields all zero segments", func(t *testing.T) {
		peaks := streamPeaks(bytes.NewReader(nil), 0, 3)
		assert.Equal(t, []float64{0, 0, 0}, peaks)
	})
}

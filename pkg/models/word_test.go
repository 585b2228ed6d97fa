package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortWordsByStart(t *testing.T) {
	t.Run("orders by start ascending", func(t *testing.T) {
		words := []Word{
			{Text: "world", Start: 8.0, End: 8.4, Speaker: 1},
			{Text: "hello", Start: 0.0, End: 0.5, Speaker: 0},
		}
		SortWordsByStart(words)
		assert.Equal(t, "hello", words[0].Text)
		assert.Equal(t, "world", words[1].Text)
	})

	t.Run("stable on equal timestamps", func(t *testing.T) {
		// Two speakers talking at the same instant: insertion order
		// (track order) must survive the sort.
		words := []Word{
			{Text: "a0", Start: 1.0, Speaker: 0},
			{Text: "a1", Start: 1.0, Speaker: 0},
			{Text: "b0", Start: 1.0, Speaker: 1},
			{Text: "b1", Start: 1.0, Speaker: 1},
		}
		SortWordsByStart(words)
		require.Len(t, words, 4)
		assert.Equal(t, []Word{
			{Text: "a0", Start: 1.0, Speaker: 0},
			{Text: "a1", Start: 1.0, Speaker: 0},
			{Text: "b0", Start: 1.0, Speaker: 1},
			{Text: "b1", Start: 1.0, Speaker: 1},
		}, words)
	})

	t.Run("sorting twice is a no-op", func(t *testing.T) {
		words := []Word{
			{Text: "c", Start: 2.0},
			{Text: "a", Start: 0.0},
			{Text: "b", Start: 2.0},
		}
		SortWordsByStart(words)
		first := make([]Word, len(words))
		copy(first, words)
		SortWordsByStart(words)
		assert.Equal(t, first, words)
	})
}

func TestJoinWords(t *testing.T) {
	assert.Equal(t, "", JoinWords(nil))
	assert.Equal(t, "hello world", JoinWords([]Word{
		{Text: "hello"}, {Text: "world"},
	}))
}

func TestChunkWords(t *testing.T) {
	mk := func(n int) []Word {
		words := make([]Word, n)
		for i := range words {
			words[i] = Word{Text: "w", Start: float64(i)}
		}
		return words
	}

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, ChunkWords(nil, 300))
	})

	t.Run("short tail chunk", func(t *testing.T) {
		chunks := ChunkWords(mk(750), 300)
		require.Len(t, chunks, 3)
		assert.Len(t, chunks[0], 300)
		assert.Len(t, chunks[1], 300)
		assert.Len(t, chunks[2], 150)
	})

	t.Run("exact multiple", func(t *testing.T) {
		chunks := ChunkWords(mk(600), 300)
		require.Len(t, chunks, 2)
		assert.Len(t, chunks[1], 300)
	})

	t.Run("fewer words than chunk size", func(t *testing.T) {
		chunks := ChunkWords(mk(12), 300)
		require.Len(t, chunks, 1)
		assert.Len(t, chunks[0], 12)
	})

	t.Run("non-positive size keeps everything together", func(t *testing.T) {
		chunks := ChunkWords(mk(5), 0)
		require.Len(t, chunks, 1)
		assert.Len(t, chunks[0], 5)
	})
}

func TestManifestValidate(t *testing.T) {
	valid := RecordingManifest{
		RecordingID:  "rec-1",
		TranscriptID: "tr-1",
		Bucket:       "recordings",
		Tracks:       []ManifestTrack{{S3Key: "a.webm"}, {S3Key: "b.webm"}},
	}

	t.Run("valid", func(t *testing.T) {
		m := valid
		assert.NoError(t, m.Validate())
		assert.Equal(t, []string{"a.webm", "b.webm"}, m.TrackKeys())
	})

	t.Run("missing recording id", func(t *testing.T) {
		m := valid
		m.RecordingID = " "
		assert.ErrorContains(t, m.Validate(), "recording_id")
	})

	t.Run("missing transcript id", func(t *testing.T) {
		m := valid
		m.TranscriptID = ""
		assert.ErrorContains(t, m.Validate(), "transcript_id")
	})

	t.Run("missing bucket", func(t *testing.T) {
		m := valid
		m.Bucket = ""
		assert.ErrorContains(t, m.Validate(), "bucket")
	})

	t.Run("no tracks", func(t *testing.T) {
		m := valid
		m.Tracks = nil
		assert.ErrorContains(t, m.Validate(), "track")
	})

	t.Run("blank track key", func(t *testing.T) {
		m := valid
		m.Tracks = []ManifestTrack{{S3Key: "a.webm"}, {S3Key: ""}}
		assert.ErrorContains(t, m.Validate(), "tracks[1]")
	})
}

func TestObjectKeyLayout(t *testing.T) {
	assert.Equal(t, "tmp/tr-1/tracks/", PaddedTrackPrefix("tr-1"))
	assert.Equal(t, "tmp/tr-1/tracks/padded_2.webm", PaddedTrackKey("tr-1", 2))
	assert.Equal(t, "tr-1/audio.mp3", MixedAudioKey("tr-1"))
	assert.True(t, strings.HasPrefix(PaddedTrackKey("tr-1", 0), PaddedTrackPrefix("tr-1")))
}

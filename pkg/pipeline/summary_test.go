package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/pkg/models"
)

func TestBuildLongSummary(t *testing.T) {
	subjects := []subjectResult{
		{SubjectIndex: 0, Subject: "Release Planning", Paragraph: "The team agreed to ship Friday."},
		{SubjectIndex: 1, Subject: "Hiring", Paragraph: "Two candidates move to onsite."},
	}
	got := buildLongSummary("A short recap.", subjects)
	want := "# Quick recap\n\n" +
		"A short recap.\n\n" +
		"# Summary\n\n" +
		"**Release Planning**\nThe team agreed to ship Friday.\n\n" +
		"**Hiring**\nTwo candidates move to onsite.\n"
	assert.Equal(t, want, got)
}

func TestBuildLongSummaryNoSubjects(t *testing.T) {
	got := buildLongSummary("", nil)
	assert.Equal(t, "# Quick recap\n\n\n\n# Summary\n", got)
}

func TestChunkParams(t *testing.T) {
	words := []models.Word{
		{Text: "hello", Start: 1.0, End: 1.4, Speaker: 0},
		{Text: "there", Start: 1.5, End: 1.9, Speaker: 0},
		{Text: "general", Start: 2.0, End: 2.6, Speaker: 1},
	}
	chunks := [][]models.Word{words[:2], words[2:]}

	params := chunkParams(chunks)
	require.Len(t, params, 2)

	assert.Equal(t, 0, params[0].ChunkIndex)
	assert.Equal(t, "hello there", params[0].Text)
	assert.Equal(t, 1.0, params[0].Timestamp)
	assert.InDelta(t, 0.9, params[0].Duration, 1e-9)
	assert.Equal(t, words[:2], params[0].Words)

	assert.Equal(t, 1, params[1].ChunkIndex)
	assert.Equal(t, "general", params[1].Text)
	assert.Equal(t, 2.0, params[1].Timestamp)
	assert.InDelta(t, 0.6, params[1].Duration, 1e-9)
}

func TestSpeakerLines(t *testing.T) {
	words := []models.Word{
		{Text: "shall", Start: 0.0, Speaker: 0},
		{Text: "we", Start: 0.2, Speaker: 0},
		{Text: "start", Start: 0.4, Speaker: 0},
		{Text: "yes", Start: 0.9, Speaker: 1},
		{Text: "go", Start: 1.4, Speaker: 0},
		{Text: "ahead", Start: 1.6, Speaker: 0},
	}
	participants := []*ent.Participant{
		{SpeakerIndex: 0, DisplayName: "Alice"},
	}

	got := speakerLines(words, participants)
	want := "Alice: shall we start\n" +
		"Speaker 1: yes\n" +
		"Alice: go ahead"
	assert.Equal(t, want, got)
}

func TestSpeakerLinesEmpty(t *testing.T) {
	assert.Empty(t, speakerLines(nil, nil))
}

func TestTopicID(t *testing.T) {
	assert.Equal(t, "tr-1-topic-0", topicID("tr-1", 0))
	assert.Equal(t, "tr-1-topic-12", topicID("tr-1", 12))
	assert.NotEqual(t, topicID("tr-1", 1), topicID("tr-2", 1), "IDs are scoped per transcript")
}

package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/pkg/events"
	"github.com/monadical-sas/reflector/pkg/models"
	"github.com/monadical-sas/reflector/pkg/queue"
	"github.com/monadical-sas/reflector/pkg/services"
)

// detectTopics slices the merged word stream into fixed-size chunks and
// fans one topic_chunk child out per slice. An empty meeting fans out
// nothing and the join completes immediately.
func (p *Pipeline) detectTopics(ctx context.Context, task *ent.PipelineTask) (any, error) {
	words, err := p.mergedWords(ctx, task.WorkflowRunID)
	if err != nil {
		return nil, err
	}
	join, err := p.taskByName(ctx, task.WorkflowRunID, TaskTopicsJoin)
	if err != nil {
		return nil, err
	}

	chunks := models.ChunkWords(words, p.cfg.Pipeline.TopicChunkWordCount)
	params := chunkParams(chunks)

	medium := p.cfg.Pipeline.TimeoutMedium.Seconds()
	children := make([]queue.TaskSpec, 0, len(params))
	for _, cp := range params {
		children = append(children, queue.TaskSpec{
			ID:             queue.NewTaskID(),
			Name:           TaskTopicChunk,
			TimeoutSeconds: medium,
			Params:         cp,
		})
	}

	if err := queue.FanOut(ctx, p.client, task, join.ID, children); err != nil {
		return nil, err
	}
	return countResult{Count: len(children)}, nil
}

// chunkParams turns word chunks into topic_chunk params: the chunk
// text, the meeting-time span it covers, and the words themselves for
// later alignment.
func chunkParams(chunks [][]models.Word) []topicChunkParams {
	params := make([]topicChunkParams, 0, len(chunks))
	for i, chunk := range chunks {
		if len(chunk) == 0 {
			continue
		}
		first, last := chunk[0], chunk[len(chunk)-1]
		params = append(params, topicChunkParams{
			ChunkIndex: i,
			Text:       models.JoinWords(chunk),
			Timestamp:  first.Start,
			Duration:   last.End - first.Start,
			Words:      chunk,
		})
	}
	return params
}

// topicChunk asks the model for a title and summary of one chunk. The
// title is forced through title case since models drift between
// sentence case and shouting.
func (p *Pipeline) topicChunk(ctx context.Context, task *ent.PipelineTask) (any, error) {
	var params topicChunkParams
	if err := queue.DecodeParams(task, &params); err != nil {
		return nil, err
	}

	var out struct {
		Title   string `json:"title"`
		Summary string `json:"summary"`
	}
	if err := p.llm.CompleteStructured(ctx, topicPrompt, []string{params.Text}, topicSchema, &out); err != nil {
		return nil, fmt.Errorf("summarize chunk %d: %w", params.ChunkIndex, err)
	}

	return topicChunkResult{
		ChunkIndex: params.ChunkIndex,
		Title:      TitleCase(out.Title),
		Summary:    out.Summary,
	}, nil
}

// topicsJoin persists every chunk's topic in chunk order. Topic IDs are
// deterministic per chunk, so a replayed join upserts the same rows and
// the deduped TOPIC events are published at most once each.
func (p *Pipeline) topicsJoin(ctx context.Context, task *ent.PipelineTask) (any, error) {
	children, err := p.completedByName(ctx, task.WorkflowRunID, TaskTopicChunk)
	if err != nil {
		return nil, err
	}

	type chunkTopic struct {
		params topicChunkParams
		result topicChunkResult
	}
	topics := make([]chunkTopic, 0, len(children))
	for _, child := range children {
		var ct chunkTopic
		if err := queue.DecodeParams(child, &ct.params); err != nil {
			return nil, err
		}
		if err := queue.DecodeResult(child, &ct.result); err != nil {
			return nil, err
		}
		topics = append(topics, ct)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].params.ChunkIndex < topics[j].params.ChunkIndex })

	for _, topic := range topics {
		id := topicID(task.TranscriptID, topic.params.ChunkIndex)
		upsert := services.TopicUpsert{
			ID:         id,
			ChunkIndex: topic.params.ChunkIndex,
			Title:      topic.result.Title,
			Summary:    topic.result.Summary,
			Timestamp:  topic.params.Timestamp,
			Duration:   topic.params.Duration,
			Words:      topic.params.Words,
		}
		err := services.WithTx(ctx, p.client, func(tx *ent.Tx) error {
			if err := p.transcripts.UpsertTopicTx(ctx, tx, task.TranscriptID, upsert); err != nil {
				return err
			}
			return p.publisher.PublishTopicTx(ctx, tx, task.TranscriptID, events.TopicPayload{
				ID:        id,
				Title:     upsert.Title,
				Summary:   upsert.Summary,
				Timestamp: upsert.Timestamp,
				Duration:  upsert.Duration,
				Words:     upsert.Words,
			}, "topic:"+id)
		})
		if err != nil {
			return nil, fmt.Errorf("persist topic %d: %w", topic.params.ChunkIndex, err)
		}
	}

	return countResult{Count: len(topics)}, nil
}

// topicID derives the stable per-chunk topic identifier.
func topicID(transcriptID string, chunkIndex int) string {
	return fmt.Sprintf("%s-topic-%d", transcriptID, chunkIndex)
}

package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/pkg/events"
	"github.com/monadical-sas/reflector/pkg/models"
	"github.com/monadical-sas/reflector/pkg/queue"
	"github.com/monadical-sas/reflector/pkg/services"
)

type titleResult struct {
	Title string `json:"title"`
}

// generateTitle names the meeting from its topic titles. A title the
// user already set is never overwritten; the FINAL_TITLE event always
// carries whichever title won.
func (p *Pipeline) generateTitle(ctx context.Context, task *ent.PipelineTask) (any, error) {
	topics, err := p.transcripts.ListTopics(ctx, task.TranscriptID)
	if err != nil {
		return nil, err
	}

	generated := ""
	if len(topics) > 0 {
		titles := make([]string, 0, len(topics))
		for _, t := range topics {
			titles = append(titles, t.Title)
		}
		var out struct {
			Title string `json:"title"`
		}
		if err := p.llm.CompleteStructured(ctx, titlePrompt, []string{strings.Join(titles, "\n")}, titleSchema, &out); err != nil {
			return nil, fmt.Errorf("generate title: %w", err)
		}
		generated = strings.TrimSpace(out.Title)
	}

	final := generated
	err = services.WithTx(ctx, p.client, func(tx *ent.Tx) error {
		tr, err := tx.Transcript.Get(ctx, task.TranscriptID)
		if err != nil {
			return err
		}
		final = generated
		if tr.Title != nil && *tr.Title != "" {
			final = *tr.Title
		} else if generated != "" {
			if _, err := p.transcripts.UpdateTx(ctx, tx, task.TranscriptID, map[string]any{"title": generated}); err != nil {
				return err
			}
		}
		return p.publisher.PublishFinalTitleTx(ctx, tx, task.TranscriptID, events.FinalTitlePayload{Title: final})
	})
	if err != nil {
		return nil, err
	}

	return titleResult{Title: final}, nil
}

type subjectsResult struct {
	Subjects []string `json:"subjects"`
}

// extractSubjects asks the model for the main subjects discussed and
// fans one summarize_subject child out per subject. The schema caps the
// list, so a rambling model gets re-asked instead of flooding the run.
func (p *Pipeline) extractSubjects(ctx context.Context, task *ent.PipelineTask) (any, error) {
	dialogue, err := p.dialogueForRun(ctx, task.WorkflowRunID, task.TranscriptID)
	if err != nil {
		return nil, err
	}
	join, err := p.taskByName(ctx, task.WorkflowRunID, TaskSubjectsJoin)
	if err != nil {
		return nil, err
	}

	var out struct {
		Subjects []string `json:"subjects"`
	}
	if dialogue != "" {
		if err := p.llm.CompleteStructured(ctx, subjectsPrompt, []string{dialogue}, subjectsSchema, &out); err != nil {
			return nil, fmt.Errorf("extract subjects: %w", err)
		}
	}

	medium := p.cfg.Pipeline.TimeoutMedium.Seconds()
	children := make([]queue.TaskSpec, 0, len(out.Subjects))
	for i, subject := range out.Subjects {
		children = append(children, queue.TaskSpec{
			ID:             queue.NewTaskID(),
			Name:           TaskSummarizeSubject,
			TimeoutSeconds: medium,
			Params:         subjectParams{SubjectIndex: i, Subject: subject},
		})
	}

	if err := queue.FanOut(ctx, p.client, task, join.ID, children); err != nil {
		return nil, err
	}
	return subjectsResult{Subjects: out.Subjects}, nil
}

// summarizeSubject writes one paragraph about a single subject, with
// the full dialogue as context.
func (p *Pipeline) summarizeSubject(ctx context.Context, task *ent.PipelineTask) (any, error) {
	var params subjectParams
	if err := queue.DecodeParams(task, &params); err != nil {
		return nil, err
	}

	dialogue, err := p.dialogueForRun(ctx, task.WorkflowRunID, task.TranscriptID)
	if err != nil {
		return nil, err
	}

	paragraph, err := p.llm.Complete(ctx, subjectPrompt(params.Subject), dialogue)
	if err != nil {
		return nil, fmt.Errorf("summarize subject %q: %w", params.Subject, err)
	}

	return subjectResult{
		SubjectIndex: params.SubjectIndex,
		Subject:      params.Subject,
		Paragraph:    strings.TrimSpace(paragraph),
	}, nil
}

// subjectsJoin gates the recap on every subject paragraph being done.
func (p *Pipeline) subjectsJoin(ctx context.Context, task *ent.PipelineTask) (any, error) {
	extract, err := p.taskByName(ctx, task.WorkflowRunID, TaskExtractSubjects)
	if err != nil {
		return nil, err
	}
	var subjects subjectsResult
	if err := queue.DecodeResult(extract, &subjects); err != nil {
		return nil, err
	}
	children, err := p.completedByName(ctx, task.WorkflowRunID, TaskSummarizeSubject)
	if err != nil {
		return nil, err
	}
	if len(children) != len(subjects.Subjects) {
		return nil, fmt.Errorf("summarized %d of %d subjects", len(children), len(subjects.Subjects))
	}
	return countResult{Count: len(children)}, nil
}

// generateRecap condenses the subject paragraphs into the short summary
// and assembles the long-form document, persisting and announcing both
// in one transaction.
func (p *Pipeline) generateRecap(ctx context.Context, task *ent.PipelineTask) (any, error) {
	children, err := p.completedByName(ctx, task.WorkflowRunID, TaskSummarizeSubject)
	if err != nil {
		return nil, err
	}
	subjects := make([]subjectResult, 0, len(children))
	for _, child := range children {
		var res subjectResult
		if err := queue.DecodeResult(child, &res); err != nil {
			return nil, err
		}
		subjects = append(subjects, res)
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].SubjectIndex < subjects[j].SubjectIndex })

	recap := ""
	if len(subjects) > 0 {
		paragraphs := make([]string, 0, len(subjects))
		for _, s := range subjects {
			paragraphs = append(paragraphs, s.Paragraph)
		}
		recap, err = p.llm.Complete(ctx, recapPrompt, strings.Join(paragraphs, "\n\n"))
		if err != nil {
			return nil, fmt.Errorf("generate recap: %w", err)
		}
		recap = strings.TrimSpace(recap)
	}
	long := buildLongSummary(recap, subjects)

	err = services.WithTx(ctx, p.client, func(tx *ent.Tx) error {
		if _, err := p.transcripts.UpdateTx(ctx, tx, task.TranscriptID, map[string]any{
			"short_summary": recap,
			"long_summary":  long,
		}); err != nil {
			return err
		}
		if err := p.publisher.PublishFinalShortSummaryTx(ctx, tx, task.TranscriptID,
			events.FinalShortSummaryPayload{ShortSummary: recap}); err != nil {
			return err
		}
		return p.publisher.PublishFinalLongSummaryTx(ctx, tx, task.TranscriptID,
			events.FinalLongSummaryPayload{LongSummary: long})
	})
	if err != nil {
		return nil, err
	}

	return countResult{Count: len(subjects)}, nil
}

// buildLongSummary assembles the long-form markdown: the quick recap on
// top, then one bolded section per subject.
func buildLongSummary(recap string, subjects []subjectResult) string {
	var b strings.Builder
	b.WriteString("# Quick recap\n\n")
	b.WriteString(recap)
	b.WriteString("\n\n# Summary\n\n")
	for _, s := range subjects {
		fmt.Fprintf(&b, "**%s**\n%s\n\n", s.Subject, s.Paragraph)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

type actionItemsResult struct {
	Extracted bool `json:"extracted"`
	Decisions int  `json:"decisions"`
	NextSteps int  `json:"next_steps"`
}

// identifyActionItems pulls decisions and next steps out of the
// dialogue. Model failure is logged and swallowed; a meeting without
// action items is a normal outcome, not a broken run. Database failures
// still retry.
func (p *Pipeline) identifyActionItems(ctx context.Context, task *ent.PipelineTask) (any, error) {
	dialogue, err := p.dialogueForRun(ctx, task.WorkflowRunID, task.TranscriptID)
	if err != nil {
		return nil, err
	}
	if dialogue == "" {
		return actionItemsResult{}, nil
	}

	var items models.ActionItems
	if err := p.llm.CompleteStructured(ctx, actionItemsPrompt, []string{dialogue}, actionItemsSchema, &items); err != nil {
		p.logger.Warn("Action item extraction failed, continuing without",
			"transcript_id", task.TranscriptID, "error", err)
		return actionItemsResult{}, nil
	}

	err = services.WithTx(ctx, p.client, func(tx *ent.Tx) error {
		if _, err := p.transcripts.UpdateTx(ctx, tx, task.TranscriptID, map[string]any{
			"action_items": &items,
		}); err != nil {
			return err
		}
		return p.publisher.PublishActionItemsTx(ctx, tx, task.TranscriptID,
			events.ActionItemsPayload{ActionItems: items})
	})
	if err != nil {
		return nil, err
	}

	return actionItemsResult{
		Extracted: true,
		Decisions: len(items.Decisions),
		NextSteps: len(items.NextSteps),
	}, nil
}

// dialogueForRun renders the merged word stream as speaker-attributed
// dialogue for the language model.
func (p *Pipeline) dialogueForRun(ctx context.Context, workflowRunID, transcriptID string) (string, error) {
	words, err := p.mergedWords(ctx, workflowRunID)
	if err != nil {
		return "", err
	}
	participants, err := p.transcripts.ListParticipants(ctx, transcriptID)
	if err != nil {
		return "", err
	}
	return speakerLines(words, participants), nil
}

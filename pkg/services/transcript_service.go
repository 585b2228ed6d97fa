package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/participant"
	"github.com/monadical-sas/reflector/ent/topic"
	"github.com/monadical-sas/reflector/ent/transcript"
	"github.com/monadical-sas/reflector/pkg/models"
)

// TranscriptService owns all Transcript mutations and lookups.
type TranscriptService struct {
	client *ent.Client
}

// NewTranscriptService creates a new TranscriptService
func NewTranscriptService(client *ent.Client) *TranscriptService {
	return &TranscriptService{client: client}
}

// Client exposes the underlying ent client for transaction composition.
func (s *TranscriptService) Client() *ent.Client {
	return s.client
}

// WithTx runs fn in a serializable transaction on this service's client.
func (s *TranscriptService) WithTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	return WithTx(ctx, s.client, fn)
}

// CreateTranscriptRequest contains fields for creating a transcript.
type CreateTranscriptRequest struct {
	ID             string
	Name           string
	SourceLanguage string
	TargetLanguage string
	RoomID         string
	MeetingID      string
}

// Create creates a transcript in status idle.
func (s *TranscriptService) Create(httpCtx context.Context, req CreateTranscriptRequest) (*ent.Transcript, error) {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	// Background context with timeout for the critical write.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Transcript.Create().
		SetID(id).
		SetName(req.Name)
	if req.SourceLanguage != "" {
		builder.SetSourceLanguage(req.SourceLanguage)
	}
	if req.TargetLanguage != "" {
		builder.SetTargetLanguage(req.TargetLanguage)
	}
	if req.RoomID != "" {
		builder.SetRoomID(req.RoomID)
	}
	if req.MeetingID != "" {
		builder.SetMeetingID(req.MeetingID)
	}

	tr, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("transcript %s: %w", id, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create transcript: %w", err)
	}
	return tr, nil
}

// GetByID loads a transcript.
func (s *TranscriptService) GetByID(ctx context.Context, id string) (*ent.Transcript, error) {
	tr, err := s.client.Transcript.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("transcript %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}
	return tr, nil
}

// Update applies a partial field map to a transcript outside any caller
// transaction.
func (s *TranscriptService) Update(ctx context.Context, id string, fields map[string]any) (*ent.Transcript, error) {
	upd := s.client.Transcript.UpdateOneID(id)
	if err := applyTranscriptFields(upd, fields); err != nil {
		return nil, err
	}
	tr, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("transcript %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update transcript: %w", err)
	}
	return tr, nil
}

// UpdateTx is Update inside an existing transaction (pair it with an event
// append so both commit atomically).
func (s *TranscriptService) UpdateTx(ctx context.Context, tx *ent.Tx, id string, fields map[string]any) (*ent.Transcript, error) {
	upd := tx.Transcript.UpdateOneID(id)
	if err := applyTranscriptFields(upd, fields); err != nil {
		return nil, err
	}
	tr, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("transcript %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update transcript: %w", err)
	}
	return tr, nil
}

// applyTranscriptFields maps a partial field map onto the update builder.
// Unknown keys are rejected so typos fail loudly instead of silently
// dropping a write.
func applyTranscriptFields(upd *ent.TranscriptUpdateOne, fields map[string]any) error {
	for key, value := range fields {
		switch key {
		case "name":
			v, ok := value.(string)
			if !ok {
				return NewValidationError(key, "expected string")
			}
			upd.SetName(v)
		case "status":
			v, ok := value.(transcript.Status)
			if !ok {
				s, sok := value.(string)
				if !sok {
					return NewValidationError(key, "expected status")
				}
				v = transcript.Status(s)
			}
			if err := transcript.StatusValidator(v); err != nil {
				return NewValidationError(key, err.Error())
			}
			upd.SetStatus(v)
		case "title":
			v, ok := value.(string)
			if !ok {
				return NewValidationError(key, "expected string")
			}
			upd.SetTitle(v)
		case "short_summary":
			v, ok := value.(string)
			if !ok {
				return NewValidationError(key, "expected string")
			}
			upd.SetShortSummary(v)
		case "long_summary":
			v, ok := value.(string)
			if !ok {
				return NewValidationError(key, "expected string")
			}
			upd.SetLongSummary(v)
		case "action_items":
			v, ok := value.(*models.ActionItems)
			if !ok {
				return NewValidationError(key, "expected action items")
			}
			upd.SetActionItems(v)
		case "duration_ms":
			v, ok := value.(float64)
			if !ok {
				return NewValidationError(key, "expected float64")
			}
			upd.SetDurationMs(v)
		case "audio_location":
			v, ok := value.(string)
			if !ok {
				return NewValidationError(key, "expected string")
			}
			al := transcript.AudioLocation(v)
			if err := transcript.AudioLocationValidator(al); err != nil {
				return NewValidationError(key, err.Error())
			}
			upd.SetAudioLocation(al)
		case "audio_deleted":
			v, ok := value.(bool)
			if !ok {
				return NewValidationError(key, "expected bool")
			}
			upd.SetAudioDeleted(v)
		case "words":
			v, ok := value.([]models.Word)
			if !ok {
				return NewValidationError(key, "expected word list")
			}
			upd.SetWords(v)
		case "workflow_run_id":
			switch v := value.(type) {
			case string:
				upd.SetWorkflowRunID(v)
			case nil:
				upd.ClearWorkflowRunID()
			default:
				return NewValidationError(key, "expected string or nil")
			}
		case "zulip_message_id":
			v, ok := value.(int64)
			if !ok {
				return NewValidationError(key, "expected int64")
			}
			upd.SetZulipMessageID(v)
		default:
			return NewValidationError(key, "unknown transcript field")
		}
	}
	return nil
}

// SetStatus transitions the transcript lifecycle status.
func (s *TranscriptService) SetStatus(ctx context.Context, id string, status transcript.Status) error {
	_, err := s.Update(ctx, id, map[string]any{"status": status})
	return err
}

// ClaimWorkflowRun atomically sets workflow_run_id and status=processing on
// a transcript that has no active run. Returns ErrActiveRun when another run
// owns the transcript.
func (s *TranscriptService) ClaimWorkflowRun(ctx context.Context, id, workflowRunID string) error {
	n, err := s.client.Transcript.Update().
		Where(
			transcript.IDEQ(id),
			transcript.WorkflowRunIDIsNil(),
		).
		SetWorkflowRunID(workflowRunID).
		SetStatus(transcript.StatusProcessing).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to claim workflow run: %w", err)
	}
	if n == 0 {
		// Either the transcript is missing or a run is in flight.
		if _, gerr := s.GetByID(ctx, id); gerr != nil {
			return gerr
		}
		return ErrActiveRun
	}
	return nil
}

// TopicUpsert is the write model for upsert_topic.
type TopicUpsert struct {
	ID         string
	ChunkIndex int
	Title      string
	Summary    string
	Timestamp  float64
	Duration   float64
	Words      []models.Word
}

// UpsertTopicTx replaces the topic with the same id or appends a new one,
// inside the caller's transaction.
func (s *TranscriptService) UpsertTopicTx(ctx context.Context, tx *ent.Tx, transcriptID string, t TopicUpsert) error {
	if t.ID == "" {
		return NewValidationError("id", "required")
	}
	err := tx.Topic.Create().
		SetID(t.ID).
		SetTranscriptID(transcriptID).
		SetChunkIndex(t.ChunkIndex).
		SetTitle(t.Title).
		SetSummary(t.Summary).
		SetTimestamp(t.Timestamp).
		SetDuration(t.Duration).
		SetWords(t.Words).
		OnConflictColumns(topic.FieldID).
		Update(func(u *ent.TopicUpsert) {
			u.SetChunkIndex(t.ChunkIndex)
			u.SetTitle(t.Title)
			u.SetSummary(t.Summary)
			u.SetTimestamp(t.Timestamp)
			u.SetDuration(t.Duration)
			u.SetWords(t.Words)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert topic %s: %w", t.ID, err)
	}
	return nil
}

// ListTopics returns the transcript's topics ordered by chunk index.
func (s *TranscriptService) ListTopics(ctx context.Context, transcriptID string) ([]*ent.Topic, error) {
	topics, err := s.client.Topic.Query().
		Where(topic.TranscriptIDEQ(transcriptID)).
		Order(ent.Asc(topic.FieldChunkIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	return topics, nil
}

// ParticipantUpsert is the write model for upsert_participant.
type ParticipantUpsert struct {
	SpeakerIndex int
	DisplayName  string
	PlatformID   string
	UserID       string
}

// UpsertParticipant inserts or updates the participant for a speaker index.
func (s *TranscriptService) UpsertParticipant(ctx context.Context, transcriptID string, p ParticipantUpsert) error {
	if p.DisplayName == "" {
		return NewValidationError("display_name", "required")
	}
	builder := s.client.Participant.Create().
		SetID(uuid.NewString()).
		SetTranscriptID(transcriptID).
		SetSpeakerIndex(p.SpeakerIndex).
		SetDisplayName(p.DisplayName)
	if p.PlatformID != "" {
		builder.SetPlatformID(p.PlatformID)
	}
	if p.UserID != "" {
		builder.SetUserID(p.UserID)
	}
	err := builder.
		OnConflictColumns(participant.FieldTranscriptID, participant.FieldSpeakerIndex).
		Update(func(u *ent.ParticipantUpsert) {
			u.SetDisplayName(p.DisplayName)
			if p.PlatformID != "" {
				u.SetPlatformID(p.PlatformID)
			}
			if p.UserID != "" {
				u.SetUserID(p.UserID)
			}
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert participant %d: %w", p.SpeakerIndex, err)
	}
	return nil
}

// DeleteParticipant removes the participant with the given speaker index.
// Deleting a missing participant succeeds.
func (s *TranscriptService) DeleteParticipant(ctx context.Context, transcriptID string, speakerIndex int) error {
	_, err := s.client.Participant.Delete().
		Where(
			participant.TranscriptIDEQ(transcriptID),
			participant.SpeakerIndexEQ(speakerIndex),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete participant %d: %w", speakerIndex, err)
	}
	return nil
}

// ListParticipants returns the transcript's participants ordered by speaker index.
func (s *TranscriptService) ListParticipants(ctx context.Context, transcriptID string) ([]*ent.Participant, error) {
	parts, err := s.client.Participant.Query().
		Where(participant.TranscriptIDEQ(transcriptID)).
		Order(ent.Asc(participant.FieldSpeakerIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return parts, nil
}

// SpeakerName returns participants as a speaker-index lookup with
// "Speaker {i}" fallbacks for gaps.
func SpeakerName(parts []*ent.Participant, speakerIndex int) string {
	for _, p := range parts {
		if p.SpeakerIndex == speakerIndex {
			return p.DisplayName
		}
	}
	return fmt.Sprintf("Speaker %d", speakerIndex)
}

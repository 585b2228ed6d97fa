package services

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/event"
)

const eventWriteTimeout = 10 * time.Second

// EventService owns the append-only transcript event log. Event ids are
// assigned by the database and double as resume cursors.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// AppendTx appends an event inside the caller's transaction so the event
// becomes visible atomically with the state change it describes.
//
// An empty dedupeKey gets a random one, making the append effectively
// fire-and-forget. A repeated dedupeKey returns ErrDuplicateEvent and
// leaves the log untouched.
func (s *EventService) AppendTx(ctx context.Context, tx *ent.Tx, transcriptID, kind string, payload any, dedupeKey string) (*ent.Event, error) {
	if transcriptID == "" {
		return nil, NewValidationError("transcript_id", "required")
	}
	if kind == "" {
		return nil, NewValidationError("kind", "required")
	}

	raw, err := marshalEventPayload(payload)
	if err != nil {
		return nil, err
	}
	if dedupeKey == "" {
		dedupeKey = uuid.NewString()
	}

	id, err := tx.Event.Create().
		SetTranscriptID(transcriptID).
		SetKind(kind).
		SetPayload(raw).
		SetDedupeKey(dedupeKey).
		OnConflictColumns(event.FieldTranscriptID, event.FieldDedupeKey).
		DoNothing().
		ID(ctx)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) || ent.IsNotFound(err) {
			return nil, ErrDuplicateEvent
		}
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	return &ent.Event{
		ID:           id,
		TranscriptID: transcriptID,
		Kind:         kind,
		Payload:      raw,
		DedupeKey:    dedupeKey,
	}, nil
}

// Append appends an event in its own transaction. The write runs on a
// background context so a disconnecting caller cannot abort it mid-flight.
func (s *EventService) Append(ctx context.Context, transcriptID, kind string, payload any, dedupeKey string) (*ent.Event, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), eventWriteTimeout)
	defer cancel()

	var appended *ent.Event
	err := WithTx(writeCtx, s.client, func(tx *ent.Tx) error {
		var txErr error
		appended, txErr = s.AppendTx(writeCtx, tx, transcriptID, kind, payload, dedupeKey)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return appended, nil
}

// ListSince returns up to limit events for a transcript with id greater
// than sinceID, in commit order. sinceID 0 replays from the beginning.
func (s *EventService) ListSince(ctx context.Context, transcriptID string, sinceID, limit int) ([]*ent.Event, error) {
	if limit <= 0 {
		return nil, NewValidationError("limit", "must be positive")
	}
	events, err := s.client.Event.Query().
		Where(
			event.TranscriptIDEQ(transcriptID),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// LatestID returns the id of the transcript's most recent event, or 0 when
// the log is empty.
func (s *EventService) LatestID(ctx context.Context, transcriptID string) (int, error) {
	last, err := s.client.Event.Query().
		Where(event.TranscriptIDEQ(transcriptID)).
		Order(ent.Desc(event.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query latest event: %w", err)
	}
	return last.ID, nil
}

func marshalEventPayload(payload any) (json.RawMessage, error) {
	switch v := payload.(type) {
	case nil:
		return json.RawMessage(`{}`), nil
	case json.RawMessage:
		return v, nil
	case []byte:
		return json.RawMessage(v), nil
	default:
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal event payload: %w", err)
		}
		return raw, nil
	}
}

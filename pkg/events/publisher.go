package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/pkg/services"
)

// notifyPayloadLimit is the largest envelope sent through pg_notify.
// PostgreSQL caps NOTIFY payloads at 8000 bytes; staying under leaves
// headroom for encoding differences.
const notifyPayloadLimit = 7900

// Envelope is the wire format for progress events, both over NOTIFY and
// over WebSocket (live and catchup deliveries are byte-compatible).
type Envelope struct {
	ID        int             `json:"id"`
	Event     string          `json:"event"`
	Data      json.RawMessage `json:"data,omitempty"`
	Truncated bool            `json:"truncated,omitempty"`
}

// Publisher appends progress events and broadcasts them via NOTIFY.
// The append and the broadcast share one transaction with the state change
// that produced the event, so subscribers observe exactly the committed
// history.
//
// Each public method accepts a specific typed payload struct — see
// payloads.go. Kinds that may be re-published by a replayed task take a
// dedupe key; a duplicate append is silently skipped.
type Publisher struct {
	client *ent.Client
	events *services.EventService
}

// NewPublisher creates a new Publisher.
func NewPublisher(client *ent.Client, events *services.EventService) *Publisher {
	return &Publisher{client: client, events: events}
}

// PublishTx appends an event and queues its NOTIFY inside the caller's
// transaction. pg_notify is transactional: the notification is held until
// COMMIT and dropped on ROLLBACK.
func (p *Publisher) PublishTx(ctx context.Context, tx *ent.Tx, transcriptID, kind string, payload any, dedupeKey string) error {
	evt, err := p.events.AppendTx(ctx, tx, transcriptID, kind, payload, dedupeKey)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEvent) {
			slog.Debug("Skipping duplicate progress event",
				"transcript_id", transcriptID, "event", kind, "dedupe_key", dedupeKey)
			return nil
		}
		return err
	}

	notifyPayload, err := marshalEnvelope(evt.ID, kind, evt.Payload)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", TranscriptChannel(transcriptID), notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// Publish appends and broadcasts an event in its own transaction, for
// events with no co-persisted database state.
func (p *Publisher) Publish(ctx context.Context, transcriptID, kind string, payload any, dedupeKey string) error {
	return services.WithTx(ctx, p.client, func(tx *ent.Tx) error {
		return p.PublishTx(ctx, tx, transcriptID, kind, payload, dedupeKey)
	})
}

// --- Typed wrappers ---

// PublishStatus broadcasts a STATUS lifecycle event.
func (p *Publisher) PublishStatus(ctx context.Context, transcriptID string, payload StatusPayload, dedupeKey string) error {
	return p.Publish(ctx, transcriptID, KindStatus, payload, dedupeKey)
}

// PublishStatusTx broadcasts a STATUS event inside the caller's transaction.
func (p *Publisher) PublishStatusTx(ctx context.Context, tx *ent.Tx, transcriptID string, payload StatusPayload, dedupeKey string) error {
	return p.PublishTx(ctx, tx, transcriptID, KindStatus, payload, dedupeKey)
}

// PublishTopicTx broadcasts a TOPIC event inside the caller's transaction,
// paired with the topic upsert it announces.
func (p *Publisher) PublishTopicTx(ctx context.Context, tx *ent.Tx, transcriptID string, payload TopicPayload, dedupeKey string) error {
	return p.PublishTx(ctx, tx, transcriptID, KindTopic, payload, dedupeKey)
}

// PublishFinalTitleTx broadcasts a FINAL_TITLE event inside the caller's
// transaction.
func (p *Publisher) PublishFinalTitleTx(ctx context.Context, tx *ent.Tx, transcriptID string, payload FinalTitlePayload) error {
	return p.PublishTx(ctx, tx, transcriptID, KindFinalTitle, payload, "")
}

// PublishFinalShortSummaryTx broadcasts a FINAL_SHORT_SUMMARY event inside
// the caller's transaction.
func (p *Publisher) PublishFinalShortSummaryTx(ctx context.Context, tx *ent.Tx, transcriptID string, payload FinalShortSummaryPayload) error {
	return p.PublishTx(ctx, tx, transcriptID, KindFinalShortSummary, payload, "")
}

// PublishFinalLongSummaryTx broadcasts a FINAL_LONG_SUMMARY event inside
// the caller's transaction.
func (p *Publisher) PublishFinalLongSummaryTx(ctx context.Context, tx *ent.Tx, transcriptID string, payload FinalLongSummaryPayload) error {
	return p.PublishTx(ctx, tx, transcriptID, KindFinalLongSummary, payload, "")
}

// PublishActionItemsTx broadcasts an ACTION_ITEMS event inside the caller's
// transaction.
func (p *Publisher) PublishActionItemsTx(ctx context.Context, tx *ent.Tx, transcriptID string, payload ActionItemsPayload) error {
	return p.PublishTx(ctx, tx, transcriptID, KindActionItems, payload, "")
}

// PublishTranscriptTx broadcasts a TRANSCRIPT event inside the caller's
// transaction, paired with the merged word list write.
func (p *Publisher) PublishTranscriptTx(ctx context.Context, tx *ent.Tx, transcriptID string, payload TranscriptPayload) error {
	return p.PublishTx(ctx, tx, transcriptID, KindTranscript, payload, "")
}

// PublishDurationTx broadcasts a DURATION event inside the caller's
// transaction.
func (p *Publisher) PublishDurationTx(ctx context.Context, tx *ent.Tx, transcriptID string, payload DurationPayload) error {
	return p.PublishTx(ctx, tx, transcriptID, KindDuration, payload, "")
}

// PublishWaveform broadcasts a WAVEFORM event. The waveform itself lives on
// disk, so there is no database write to pair with.
func (p *Publisher) PublishWaveform(ctx context.Context, transcriptID string, payload WaveformPayload) error {
	return p.Publish(ctx, transcriptID, KindWaveform, payload, "")
}

// --- Internal helpers ---

// marshalEnvelope renders the NOTIFY payload for an event, substituting a
// truncation envelope when the full one would exceed the NOTIFY limit.
// Clients resolve a truncated event by fetching it via catchup, where no
// size limit applies.
func marshalEnvelope(id int, kind string, data json.RawMessage) (string, error) {
	full, err := json.Marshal(Envelope{ID: id, Event: kind, Data: data})
	if err != nil {
		return "", fmt.Errorf("failed to marshal event envelope: %w", err)
	}
	if len(full) <= notifyPayloadLimit {
		return string(full), nil
	}

	truncated, err := json.Marshal(Envelope{ID: id, Event: kind, Truncated: true})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncation envelope: %w", err)
	}
	return string(truncated), nil
}

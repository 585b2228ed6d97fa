// Package events delivers transcript progress to WebSocket subscribers,
// with PostgreSQL NOTIFY/LISTEN fanning events out across pods.
//
// Every event is appended to the events table and broadcast with pg_notify
// in the SAME transaction as the state change that produced it, so a
// subscriber can never observe an event whose side effect did not commit,
// and never misses an event for a commit it observed.
//
// Delivery contract, per transcript channel:
//
//   - Events carry a database-assigned id that increases in commit order.
//   - Live delivery pushes the full envelope through NOTIFY. Payloads that
//     would exceed PostgreSQL's NOTIFY size limit are replaced by a
//     truncation envelope ({"truncated": true}); the client fetches the
//     full event via catchup.
//   - On (re)connect a client subscribes and is immediately caught up from
//     the events table, using its last seen id as the cursor. LISTEN is
//     established before the catchup query runs, closing the gap where an
//     event published between the two would otherwise be lost.
//
// A replayed task that re-publishes an event with the same dedupe key is
// absorbed by the store (no duplicate row, no duplicate NOTIFY).
package events

// Progress event kinds, as they appear in the wire envelope's "event" field.
const (
	KindStatus            = "STATUS"
	KindTopic             = "TOPIC"
	KindFinalTitle        = "FINAL_TITLE"
	KindFinalShortSummary = "FINAL_SHORT_SUMMARY"
	KindFinalLongSummary  = "FINAL_LONG_SUMMARY"
	KindActionItems       = "ACTION_ITEMS"
	KindTranscript        = "TRANSCRIPT"
	KindDuration          = "DURATION"
	KindWaveform          = "WAVEFORM"
)

// TranscriptChannel returns the NOTIFY channel for a transcript's events.
// Format: "transcript:{transcript_id}"
func TranscriptChannel(transcriptID string) string {
	return "transcript:" + transcriptID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "transcript:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}

package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptChannel(t *testing.T) {
	assert.Equal(t, "transcript:abc-123", TranscriptChannel("abc-123"))
}

func TestClientMessage_Unmarshal(t *testing.T) {
	t.Run("subscribe", func(t *testing.T) {
		var msg ClientMessage
		require.NoError(t, json.Unmarshal([]byte(`{"action":"subscribe","channel":"transcript:abc"}`), &msg))
		assert.Equal(t, "subscribe", msg.Action)
		assert.Equal(t, "transcript:abc", msg.Channel)
		assert.Nil(t, msg.LastEventID)
	})

	t.Run("catchup with cursor", func(t *testing.T) {
		var msg ClientMessage
		require.NoError(t, json.Unmarshal([]byte(`{"action":"catchup","channel":"transcript:abc","last_event_id":42}`), &msg))
		require.NotNil(t, msg.LastEventID)
		assert.Equal(t, 42, *msg.LastEventID)
	})

	t.Run("catchup cursor zero is distinct from absent", func(t *testing.T) {
		var msg ClientMessage
		require.NoError(t, json.Unmarshal([]byte(`{"action":"catchup","channel":"transcript:abc","last_event_id":0}`), &msg))
		require.NotNil(t, msg.LastEventID)
		assert.Equal(t, 0, *msg.LastEventID)
	})
}

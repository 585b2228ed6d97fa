package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifyListener_SubscribeBeforeStart(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, time.Second)
	listener := NewNotifyListener("postgres://unused", manager)

	err := listener.Subscribe(context.Background(), "transcript:abc")
	assert.Error(t, err, "subscribe must fail before the LISTEN connection exists")
	assert.False(t, listener.isListening("transcript:abc"))
}

func TestNotifyListener_UnsubscribeUnknownChannel(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, time.Second)
	listener := NewNotifyListener("postgres://unused", manager)

	// Not listening on the channel — a no-op, not an error.
	err := listener.Unsubscribe(context.Background(), "transcript:abc")
	assert.NoError(t, err)
}

package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/ent"
)

// createTestTranscript creates a transcript row for tests that need one to
// hang topics, participants or events off.
func createTestTranscript(t *testing.T, client *ent.Client) *ent.Transcript {
	t.Helper()
	svc := NewTranscriptService(client)
	tr, err := svc.Create(context.Background(), CreateTranscriptRequest{
		ID:   uuid.NewString(),
		Name: "test recording",
	})
	require.NoError(t, err)
	return tr
}

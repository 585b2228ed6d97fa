package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/monadical-sas/reflector/test/database"
)

func TestMeetingService_Rooms(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMeetingService(client.Client)
	ctx := context.Background()

	t.Run("creates and loads a room by name", func(t *testing.T) {
		created, err := svc.CreateRoom(ctx, CreateRoomRequest{
			Name:          "engineering",
			WebhookURL:    "https://hooks.example.com/reflector",
			WebhookSecret: "whsec_test",
			ZulipAutoPost: true,
			ZulipStream:   "meetings",
			ZulipTopic:    "recaps",
		})
		require.NoError(t, err)

		got, err := svc.GetRoomByName(ctx, "engineering")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		require.NotNil(t, got.WebhookURL)
		assert.Equal(t, "https://hooks.example.com/reflector", *got.WebhookURL)
		assert.True(t, got.ZulipAutoPost)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := svc.CreateRoom(ctx, CreateRoomRequest{Name: "duplicated"})
		require.NoError(t, err)
		_, err = svc.CreateRoom(ctx, CreateRoomRequest{Name: "duplicated"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := svc.CreateRoom(ctx, CreateRoomRequest{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for missing rooms", func(t *testing.T) {
		_, err := svc.GetRoom(ctx, uuid.NewString())
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = svc.GetRoomByName(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMeetingService_Meetings(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMeetingService(client.Client)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, CreateRoomRequest{Name: "standup-room"})
	require.NoError(t, err)

	t.Run("creates a meeting attached to a room", func(t *testing.T) {
		m, err := svc.CreateMeeting(ctx, "", room.ID, "rec-42")
		require.NoError(t, err)
		require.NotNil(t, m.RoomID)
		assert.Equal(t, room.ID, *m.RoomID)

		byRec, err := svc.GetMeetingByRecordingID(ctx, "rec-42")
		require.NoError(t, err)
		assert.Equal(t, m.ID, byRec.ID)
	})

	t.Run("creates a standalone meeting", func(t *testing.T) {
		m, err := svc.CreateMeeting(ctx, "", "", "")
		require.NoError(t, err)
		assert.Nil(t, m.RoomID)

		got, err := svc.GetMeeting(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, m.ID, got.ID)
	})

	t.Run("returns ErrNotFound for missing meetings", func(t *testing.T) {
		_, err := svc.GetMeeting(ctx, uuid.NewString())
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = svc.GetMeetingByRecordingID(ctx, "rec-unknown")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMeetingService_Consents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMeetingService(client.Client)
	ctx := context.Background()

	t.Run("no consent rows means no denial", func(t *testing.T) {
		m, err := svc.CreateMeeting(ctx, "", "", "")
		require.NoError(t, err)

		denied, err := svc.HasConsentDenial(ctx, m.ID)
		require.NoError(t, err)
		assert.False(t, denied)
	})

	t.Run("all approvals means no denial", func(t *testing.T) {
		m, err := svc.CreateMeeting(ctx, "", "", "")
		require.NoError(t, err)
		_, err = svc.RecordConsent(ctx, m.ID, "alice", true)
		require.NoError(t, err)
		_, err = svc.RecordConsent(ctx, m.ID, "bob", true)
		require.NoError(t, err)

		denied, err := svc.HasConsentDenial(ctx, m.ID)
		require.NoError(t, err)
		assert.False(t, denied)

		consents, err := svc.ListConsents(ctx, m.ID)
		require.NoError(t, err)
		assert.Len(t, consents, 2)
	})

	t.Run("a single denial flags the meeting", func(t *testing.T) {
		m, err := svc.CreateMeeting(ctx, "", "", "")
		require.NoError(t, err)
		_, err = svc.RecordConsent(ctx, m.ID, "alice", true)
		require.NoError(t, err)
		_, err = svc.RecordConsent(ctx, m.ID, "", false)
		require.NoError(t, err)

		denied, err := svc.HasConsentDenial(ctx, m.ID)
		require.NoError(t, err)
		assert.True(t, denied)
	})
}

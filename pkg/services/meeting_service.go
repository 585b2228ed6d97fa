package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/meeting"
	"github.com/monadical-sas/reflector/ent/meetingconsent"
	"github.com/monadical-sas/reflector/ent/room"
)

// MeetingService reads rooms, meetings and recording consents. The pipeline
// only consumes these; the recording platform writes them.
type MeetingService struct {
	client *ent.Client
}

// NewMeetingService creates a new MeetingService
func NewMeetingService(client *ent.Client) *MeetingService {
	return &MeetingService{client: client}
}

// GetRoom loads a room by id.
func (s *MeetingService) GetRoom(ctx context.Context, id string) (*ent.Room, error) {
	r, err := s.client.Room.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("room %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return r, nil
}

// GetRoomByName loads a room by its unique name.
func (s *MeetingService) GetRoomByName(ctx context.Context, name string) (*ent.Room, error) {
	r, err := s.client.Room.Query().
		Where(room.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("room %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get room by name: %w", err)
	}
	return r, nil
}

// GetMeeting loads a meeting by id.
func (s *MeetingService) GetMeeting(ctx context.Context, id string) (*ent.Meeting, error) {
	m, err := s.client.Meeting.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("meeting %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return m, nil
}

// GetMeetingByRecordingID resolves the meeting a platform recording belongs to.
func (s *MeetingService) GetMeetingByRecordingID(ctx context.Context, recordingID string) (*ent.Meeting, error) {
	m, err := s.client.Meeting.Query().
		Where(meeting.RecordingIDEQ(recordingID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("meeting for recording %s: %w", recordingID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get meeting by recording id: %w", err)
	}
	return m, nil
}

// ListConsents returns all consent records for a meeting.
func (s *MeetingService) ListConsents(ctx context.Context, meetingID string) ([]*ent.MeetingConsent, error) {
	consents, err := s.client.MeetingConsent.Query().
		Where(meetingconsent.MeetingIDEQ(meetingID)).
		Order(ent.Asc(meetingconsent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consents: %w", err)
	}
	return consents, nil
}

// HasConsentDenial reports whether any participant withheld recording
// consent for the meeting. No consent rows at all counts as no denial.
func (s *MeetingService) HasConsentDenial(ctx context.Context, meetingID string) (bool, error) {
	n, err := s.client.MeetingConsent.Query().
		Where(
			meetingconsent.MeetingIDEQ(meetingID),
			meetingconsent.ApprovedEQ(false),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count consent denials: %w", err)
	}
	return n > 0, nil
}

// CreateRoomRequest contains fields for creating a room.
type CreateRoomRequest struct {
	ID            string
	Name          string
	WebhookURL    string
	WebhookSecret string
	ZulipAutoPost bool
	ZulipStream   string
	ZulipTopic    string
}

// CreateRoom creates a room.
func (s *MeetingService) CreateRoom(ctx context.Context, req CreateRoomRequest) (*ent.Room, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	builder := s.client.Room.Create().
		SetID(id).
		SetName(req.Name).
		SetZulipAutoPost(req.ZulipAutoPost)
	if req.WebhookURL != "" {
		builder.SetWebhookURL(req.WebhookURL)
	}
	if req.WebhookSecret != "" {
		builder.SetWebhookSecret(req.WebhookSecret)
	}
	if req.ZulipStream != "" {
		builder.SetZulipStream(req.ZulipStream)
	}
	if req.ZulipTopic != "" {
		builder.SetZulipTopic(req.ZulipTopic)
	}
	r, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("room %q: %w", req.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return r, nil
}

// CreateMeeting creates a meeting, optionally attached to a room.
func (s *MeetingService) CreateMeeting(ctx context.Context, id, roomID, recordingID string) (*ent.Meeting, error) {
	if id == "" {
		id = uuid.NewString()
	}
	builder := s.client.Meeting.Create().SetID(id)
	if roomID != "" {
		builder.SetRoomID(roomID)
	}
	if recordingID != "" {
		builder.SetRecordingID(recordingID)
	}
	m, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("meeting %s: %w", id, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return m, nil
}

// RecordConsent stores one participant's recording consent decision.
func (s *MeetingService) RecordConsent(ctx context.Context, meetingID, participantIdentifier string, approved bool) (*ent.MeetingConsent, error) {
	builder := s.client.MeetingConsent.Create().
		SetID(uuid.NewString()).
		SetMeetingID(meetingID).
		SetApproved(approved)
	if participantIdentifier != "" {
		builder.SetParticipantIdentifier(participantIdentifier)
	}
	c, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record consent: %w", err)
	}
	return c, nil
}

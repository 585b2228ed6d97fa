package events

import (
	"context"
	"strings"

	"github.com/monadical-sas/reflector/pkg/services"
)

// EventServiceAdapter wraps services.EventService to implement
// CatchupQuerier, translating channel names back to transcript ids.
type EventServiceAdapter struct {
	eventService *services.EventService
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(es *services.EventService) *EventServiceAdapter {
	return &EventServiceAdapter{eventService: es}
}

// GetCatchupEvents queries events since sinceID up to limit for the catchup
// mechanism. Unknown channel formats yield no events.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	transcriptID, ok := strings.CutPrefix(channel, "transcript:")
	if !ok || transcriptID == "" {
		return nil, nil
	}

	events, err := a.eventService.ListSince(ctx, transcriptID, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, len(events))
	for i, evt := range events {
		result[i] = CatchupEvent{
			ID:      evt.ID,
			Kind:    evt.Kind,
			Payload: evt.Payload,
		}
	}
	return result, nil
}

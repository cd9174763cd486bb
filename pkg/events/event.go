package events

import "time"

// Engagement event type codes carried on the in-process pipeline.
const (
	TypeViewerResolved = "VIEWER_RESOLVED"
	TypeSessionOpened  = "SESSION_OPENED"
	TypeSessionClosed  = "SESSION_CLOSED"
	TypeSlideTracked   = "SLIDE_TRACKED"
	TypeDeckDeleted    = "DECK_DELETED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SLIDE_TRACKED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation the write path emits.
type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// SlideEvent is an append-only record of moving to a slide. TimeSpent is the
// dwell on the slide being left, 0 for the first event of a session.
// SessionId is nil for events that arrive before a session exists; those stay
// out of session-scoped counts but still feed slide-level tallies.
type SlideEvent struct {
	Id          uuid.UUID
	SessionId   *uuid.UUID
	ViewerId    uuid.UUID
	DeckId      uuid.UUID
	SlideNumber int
	ViewedAt    time.Time
	TimeSpent   int
	CreatedAt   time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Viewer is a recipient identity scoped to one deck. The same email under a
// different deck is a different Viewer. TotalOpens and TotalTimeSpent only
// ever move through atomic storage increments.
type Viewer struct {
	Id             uuid.UUID
	DeckId         uuid.UUID
	Email          string
	FirstName      string
	LastName       string
	Company        string
	FirstViewedAt  time.Time
	LastViewedAt   time.Time
	TotalOpens     int
	TotalTimeSpent int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

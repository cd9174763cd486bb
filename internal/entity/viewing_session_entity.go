package entity

import (
	"time"

	"github.com/google/uuid"
)

// ViewingSession is one continuous viewing interaction by one viewer of one
// deck. Open -> Closed is the only transition; a closed session never reopens.
// Duration stays 0 until the session ends, then holds the client-reported
// value (a repeat close overwrites it, treated as a corrected report).
type ViewingSession struct {
	Id             uuid.UUID
	ViewerId       uuid.UUID
	DeckId         uuid.UUID
	SessionToken   string
	StartedAt      time.Time
	EndedAt        *time.Time
	Duration       int
	CompletedPages []int
	UserAgent      string
	IpAddress      string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

func (s *ViewingSession) IsOpen() bool {
	return s.EndedAt == nil
}

package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByDeckID scopes viewers, sessions and events to one deck.
type ByDeckID struct {
	DeckID uuid.UUID
}

func (s ByDeckID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("deck_id = ?", s.DeckID)
}

// ByViewerID scopes sessions and events to one viewer.
type ByViewerID struct {
	ViewerID uuid.UUID
}

func (s ByViewerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("viewer_id = ?", s.ViewerID)
}

// BySessionID scopes events to one session.
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ByEmail filters by a normalized viewer email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// BySessionToken resolves a session through its opaque token.
type BySessionToken struct {
	Token string
}

func (s BySessionToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_token = ?", s.Token)
}

// StartedSince keeps sessions whose start falls inside a trailing window.
type StartedSince struct {
	Since time.Time
}

func (s StartedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("started_at >= ?", s.Since)
}

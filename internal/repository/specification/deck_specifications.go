package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeckOwnedBy scopes decks to their owning user.
type DeckOwnedBy struct {
	UserID uuid.UUID
}

func (s DeckOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByPublicToken resolves a deck through its share token.
type ByPublicToken struct {
	Token string
}

func (s ByPublicToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("public_token = ?", s.Token)
}

// ActiveOnly excludes deactivated decks (revoked share links).
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

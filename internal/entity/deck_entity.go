package entity

import (
	"time"

	"github.com/google/uuid"
)

// Deck is an uploaded document exposed for tracked viewing via a public link.
// PublicToken is immutable once issued and resolves to exactly one deck.
type Deck struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	FileName    string
	FilePath    string
	FileSize    int64
	TotalPages  int
	IsActive    bool
	PublicToken string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

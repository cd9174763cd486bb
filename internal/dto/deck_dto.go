package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateDeckRequest carries the upload metadata. Page rendering happens in
// the external PDF pipeline; TotalPages arrives here as an opaque input.
type CreateDeckRequest struct {
	Title      string `json:"title" validate:"required"`
	FileName   string `json:"file_name" validate:"required"`
	FilePath   string `json:"file_path"`
	FileSize   int64  `json:"file_size"`
	TotalPages int    `json:"total_pages" validate:"required,min=1"`
}

type DeckResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	FileName    string     `json:"file_name"`
	TotalPages  int        `json:"total_pages"`
	IsActive    bool       `json:"is_active"`
	PublicToken string     `json:"public_token"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type UpdateDeckRequest struct {
	Id       uuid.UUID
	Title    *string `json:"title"`
	IsActive *bool   `json:"is_active"`
}

// PublicDeckResponse is the unauthenticated share-link view of a deck.
type PublicDeckResponse struct {
	Name      string `json:"name"`
	PageCount int    `json:"page_count"`
	FileUrl   string `json:"file_url"`
	IsActive  bool   `json:"is_active"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type ViewerAccessRequest struct {
	DeckId    uuid.UUID `json:"deck_id" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Company   string    `json:"company"`
}

type ViewerAccessResponse struct {
	ViewerId    uuid.UUID `json:"viewer_id"`
	IsNewViewer bool      `json:"is_new_viewer"`
}

type StartSessionRequest struct {
	DeckId   uuid.UUID `json:"deck_id" validate:"required"`
	ViewerId uuid.UUID `json:"viewer_id" validate:"required"`
}

type StartSessionResponse struct {
	SessionId    uuid.UUID `json:"session_id"`
	SessionToken string    `json:"session_token"`
}

type TrackSlideRequest struct {
	SessionId   *uuid.UUID `json:"session_id"`
	DeckId      uuid.UUID  `json:"deck_id" validate:"required"`
	ViewerId    uuid.UUID  `json:"viewer_id" validate:"required"`
	SlideNumber int        `json:"slide_number" validate:"required"`
	TimeSpent   int        `json:"time_spent" validate:"min=0"`
}

type EndSessionRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Duration  int       `json:"duration" validate:"min=0"`
}

type ViewerResponse struct {
	Id             uuid.UUID `json:"id"`
	DeckId         uuid.UUID `json:"deck_id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name,omitempty"`
	LastName       string    `json:"last_name,omitempty"`
	Company        string    `json:"company,omitempty"`
	FirstViewedAt  time.Time `json:"first_viewed_at"`
	LastViewedAt   time.Time `json:"last_viewed_at"`
	TotalOpens     int       `json:"total_opens"`
	TotalTimeSpent int       `json:"total_time_spent"`
}

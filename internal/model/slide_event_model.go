package model

import (
	"time"

	"github.com/google/uuid"
)

type SlideEvent struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId   *uuid.UUID `gorm:"type:uuid;index"`
	ViewerId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeckId      uuid.UUID  `gorm:"type:uuid;not null;index:idx_slide_events_deck_slide"`
	SlideNumber int        `gorm:"not null;index:idx_slide_events_deck_slide"`
	ViewedAt    time.Time  `gorm:"not null;index"`
	TimeSpent   int        `gorm:"not null;default:0"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

func (SlideEvent) TableName() string {
	return "slide_events"
}

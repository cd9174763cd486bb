package model

import (
	"time"

	"github.com/google/uuid"
)

type Viewer struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DeckId         uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_viewers_deck_email"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_viewers_deck_email"`
	FirstName      string    `gorm:"type:varchar(255)"`
	LastName       string    `gorm:"type:varchar(255)"`
	Company        string    `gorm:"type:varchar(255)"`
	FirstViewedAt  time.Time `gorm:"not null"`
	LastViewedAt   time.Time `gorm:"not null;index:idx_viewers_deck_last_viewed,sort:desc"`
	TotalOpens     int       `gorm:"not null;default:1"`
	TotalTimeSpent int       `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Viewer) TableName() string {
	return "viewers"
}

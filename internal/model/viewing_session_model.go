package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ViewingSession struct {
	Id             uuid.UUID                `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ViewerId       uuid.UUID                `gorm:"type:uuid;not null;index"`
	DeckId         uuid.UUID                `gorm:"type:uuid;not null;index"`
	SessionToken   string                   `gorm:"type:varchar(64);not null;uniqueIndex"`
	StartedAt      time.Time                `gorm:"not null;index"`
	EndedAt        *time.Time
	Duration       int                      `gorm:"not null;default:0"`
	CompletedPages datatypes.JSONSlice[int] `gorm:"not null;default:'[]'"`
	UserAgent      string                   `gorm:"type:varchar(512)"`
	IpAddress      string                   `gorm:"type:varchar(64)"`
	CreatedAt      time.Time                `gorm:"autoCreateTime"`
	UpdatedAt      time.Time                `gorm:"autoUpdateTime"`
}

func (ViewingSession) TableName() string {
	return "viewing_sessions"
}

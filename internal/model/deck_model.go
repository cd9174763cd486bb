package model

import (
	"time"

	"github.com/google/uuid"
)

type Deck struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	FileName    string    `gorm:"type:varchar(255)"`
	FilePath    string    `gorm:"type:varchar(512)"`
	FileSize    int64     `gorm:"not null;default:0"`
	TotalPages  int       `gorm:"not null;default:0"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	PublicToken string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Deck) TableName() string {
	return "decks"
}

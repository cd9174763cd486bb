package mapper

import (
	"time"

	"decktrack-be/internal/entity"
	"decktrack-be/internal/model"
)

type DeckMapper struct{}

func NewDeckMapper() *DeckMapper {
	return &DeckMapper{}
}

func (m *DeckMapper) ToEntity(d *model.Deck) *entity.Deck {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.Deck{
		Id:          d.Id,
		UserId:      d.UserId,
		Title:       d.Title,
		FileName:    d.FileName,
		FilePath:    d.FilePath,
		FileSize:    d.FileSize,
		TotalPages:  d.TotalPages,
		IsActive:    d.IsActive,
		PublicToken: d.PublicToken,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *DeckMapper) ToModel(d *entity.Deck) *model.Deck {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.Deck{
		Id:          d.Id,
		UserId:      d.UserId,
		Title:       d.Title,
		FileName:    d.FileName,
		FilePath:    d.FilePath,
		FileSize:    d.FileSize,
		TotalPages:  d.TotalPages,
		IsActive:    d.IsActive,
		PublicToken: d.PublicToken,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *DeckMapper) ToEntities(decks []*model.Deck) []*entity.Deck {
	entities := make([]*entity.Deck, len(decks))
	for i, d := range decks {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

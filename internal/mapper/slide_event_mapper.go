package mapper

import (
	"decktrack-be/internal/entity"
	"decktrack-be/internal/model"
)

type SlideEventMapper struct{}

func NewSlideEventMapper() *SlideEventMapper {
	return &SlideEventMapper{}
}

func (m *SlideEventMapper) ToEntity(e *model.SlideEvent) *entity.SlideEvent {
	if e == nil {
		return nil
	}

	return &entity.SlideEvent{
		Id:          e.Id,
		SessionId:   e.SessionId,
		ViewerId:    e.ViewerId,
		DeckId:      e.DeckId,
		SlideNumber: e.SlideNumber,
		ViewedAt:    e.ViewedAt,
		TimeSpent:   e.TimeSpent,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *SlideEventMapper) ToModel(e *entity.SlideEvent) *model.SlideEvent {
	if e == nil {
		return nil
	}

	return &model.SlideEvent{
		Id:          e.Id,
		SessionId:   e.SessionId,
		ViewerId:    e.ViewerId,
		DeckId:      e.DeckId,
		SlideNumber: e.SlideNumber,
		ViewedAt:    e.ViewedAt,
		TimeSpent:   e.TimeSpent,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *SlideEventMapper) ToEntities(events []*model.SlideEvent) []*entity.SlideEvent {
	entities := make([]*entity.SlideEvent, len(events))
	for i, e := range events {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

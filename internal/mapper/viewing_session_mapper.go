package mapper

import (
	"time"

	"decktrack-be/internal/entity"
	"decktrack-be/internal/model"

	"gorm.io/datatypes"
)

type ViewingSessionMapper struct{}

func NewViewingSessionMapper() *ViewingSessionMapper {
	return &ViewingSessionMapper{}
}

func (m *ViewingSessionMapper) ToEntity(s *model.ViewingSession) *entity.ViewingSession {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.ViewingSession{
		Id:             s.Id,
		ViewerId:       s.ViewerId,
		DeckId:         s.DeckId,
		SessionToken:   s.SessionToken,
		StartedAt:      s.StartedAt,
		EndedAt:        s.EndedAt,
		Duration:       s.Duration,
		CompletedPages: []int(s.CompletedPages),
		UserAgent:      s.UserAgent,
		IpAddress:      s.IpAddress,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *ViewingSessionMapper) ToModel(s *entity.ViewingSession) *model.ViewingSession {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	pages := s.CompletedPages
	if pages == nil {
		pages = []int{}
	}

	return &model.ViewingSession{
		Id:             s.Id,
		ViewerId:       s.ViewerId,
		DeckId:         s.DeckId,
		SessionToken:   s.SessionToken,
		StartedAt:      s.StartedAt,
		EndedAt:        s.EndedAt,
		Duration:       s.Duration,
		CompletedPages: datatypes.JSONSlice[int](pages),
		UserAgent:      s.UserAgent,
		IpAddress:      s.IpAddress,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *ViewingSessionMapper) ToEntities(sessions []*model.ViewingSession) []*entity.ViewingSession {
	entities := make([]*entity.ViewingSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

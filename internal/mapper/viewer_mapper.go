package mapper

import (
	"time"

	"decktrack-be/internal/entity"
	"decktrack-be/internal/model"
)

type ViewerMapper struct{}

func NewViewerMapper() *ViewerMapper {
	return &ViewerMapper{}
}

func (m *ViewerMapper) ToEntity(v *model.Viewer) *entity.Viewer {
	if v == nil {
		return nil
	}

	var updatedAt *time.Time
	if !v.UpdatedAt.IsZero() {
		t := v.UpdatedAt
		updatedAt = &t
	}

	return &entity.Viewer{
		Id:             v.Id,
		DeckId:         v.DeckId,
		Email:          v.Email,
		FirstName:      v.FirstName,
		LastName:       v.LastName,
		Company:        v.Company,
		FirstViewedAt:  v.FirstViewedAt,
		LastViewedAt:   v.LastViewedAt,
		TotalOpens:     v.TotalOpens,
		TotalTimeSpent: v.TotalTimeSpent,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *ViewerMapper) ToModel(v *entity.Viewer) *model.Viewer {
	if v == nil {
		return nil
	}

	var updatedAt time.Time
	if v.UpdatedAt != nil {
		updatedAt = *v.UpdatedAt
	}

	return &model.Viewer{
		Id:             v.Id,
		DeckId:         v.DeckId,
		Email:          v.Email,
		FirstName:      v.FirstName,
		LastName:       v.LastName,
		Company:        v.Company,
		FirstViewedAt:  v.FirstViewedAt,
		LastViewedAt:   v.LastViewedAt,
		TotalOpens:     v.TotalOpens,
		TotalTimeSpent: v.TotalTimeSpent,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *ViewerMapper) ToEntities(viewers []*model.Viewer) []*entity.Viewer {
	entities := make([]*entity.Viewer, len(viewers))
	for i, v := range viewers {
		entities[i] = m.ToEntity(v)
	}
	return entities
}

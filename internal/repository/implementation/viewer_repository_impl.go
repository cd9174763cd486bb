package implementation

import (
	"context"
	"errors"
	"time"

	"decktrack-be/internal/entity"
	"decktrack-be/internal/mapper"
	"decktrack-be/internal/model"
	"decktrack-be/internal/repository/contract"
	"decktrack-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ViewerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ViewerMapper
}

func NewViewerRepository(db *gorm.DB) contract.ViewerRepository {
	return &ViewerRepositoryImpl{
		db:     db,
		mapper: mapper.NewViewerMapper(),
	}
}

func (r *ViewerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ViewerRepositoryImpl) Create(ctx context.Context, viewer *entity.Viewer) error {
	m := r.mapper.ToModel(viewer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*viewer = *r.mapper.ToEntity(m)
	return nil
}

func (r *ViewerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Viewer, error) {
	var m model.Viewer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ViewerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Viewer, error) {
	var models []*model.Viewer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ViewerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Viewer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ViewerRepositoryImpl) RecordOpen(ctx context.Context, id uuid.UUID, lastViewedAt time.Time, merge map[string]interface{}) error {
	updates := map[string]interface{}{
		"total_opens":    gorm.Expr("total_opens + 1"),
		"last_viewed_at": lastViewedAt,
	}
	for field, value := range merge {
		updates[field] = value
	}
	return r.db.WithContext(ctx).
		Model(&model.Viewer{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *ViewerRepositoryImpl) AddTimeSpent(ctx context.Context, id uuid.UUID, seconds int) error {
	return r.db.WithContext(ctx).
		Model(&model.Viewer{}).
		Where("id = ?", id).
		Update("total_time_spent", gorm.Expr("total_time_spent + ?", seconds)).Error
}

func (r *ViewerRepositoryImpl) DeleteAllByDeckId(ctx context.Context, deckId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("deck_id = ?", deckId).Delete(&model.Viewer{}).Error
}

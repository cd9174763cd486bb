package implementation

import (
	"context"

	"decktrack-be/internal/entity"
	"decktrack-be/internal/mapper"
	"decktrack-be/internal/model"
	"decktrack-be/internal/repository/contract"
	"decktrack-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SlideEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SlideEventMapper
}

func NewSlideEventRepository(db *gorm.DB) contract.SlideEventRepository {
	return &SlideEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewSlideEventMapper(),
	}
}

func (r *SlideEventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SlideEventRepositoryImpl) Create(ctx context.Context, event *entity.SlideEvent) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *SlideEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SlideEvent, error) {
	var models []*model.SlideEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SlideEventRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SlideEvent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SlideEventRepositoryImpl) AggregateBySlide(ctx context.Context, deckId uuid.UUID) ([]contract.SlideAggregateRow, error) {
	var rows []contract.SlideAggregateRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT slide_number, COUNT(*) AS views, COALESCE(SUM(time_spent), 0) AS total_time
		 FROM slide_events
		 WHERE deck_id = ?
		 GROUP BY slide_number
		 ORDER BY slide_number ASC`,
		deckId,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SlideEventRepositoryImpl) DeleteAllByDeckId(ctx context.Context, deckId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("deck_id = ?", deckId).Delete(&model.SlideEvent{}).Error
}

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

type ViewingSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ViewingSessionMapper
}

func NewViewingSessionRepository(db *gorm.DB) contract.ViewingSessionRepository {
	return &ViewingSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewViewingSessionMapper(),
	}
}

func (r *ViewingSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ViewingSessionRepositoryImpl) Create(ctx context.Context, session *entity.ViewingSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *ViewingSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ViewingSession, error) {
	var m model.ViewingSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ViewingSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ViewingSession, error) {
	var models []*model.ViewingSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ViewingSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ViewingSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ViewingSessionRepositoryImpl) Close(ctx context.Context, id uuid.UUID, endedAt time.Time, duration int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.ViewingSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"ended_at": endedAt,
			"duration": duration,
		})
	return res.RowsAffected, res.Error
}

func (r *ViewingSessionRepositoryImpl) AddCompletedPage(ctx context.Context, id uuid.UUID, page int) error {
	// Guarded jsonb append keeps set semantics without read-modify-write;
	// concurrent adds of the same page collapse to one element.
	return r.db.WithContext(ctx).Exec(
		`UPDATE viewing_sessions
		 SET completed_pages = completed_pages || to_jsonb(?::int)
		 WHERE id = ? AND NOT completed_pages @> to_jsonb(?::int)`,
		page, id, page,
	).Error
}

func (r *ViewingSessionRepositoryImpl) CountByDay(ctx context.Context, deckId uuid.UUID, since time.Time) ([]contract.DailyViewsRow, error) {
	var rows []contract.DailyViewsRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT to_char(started_at, 'YYYY-MM-DD') AS date, COUNT(*) AS views
		 FROM viewing_sessions
		 WHERE deck_id = ? AND started_at >= ?
		 GROUP BY 1
		 ORDER BY 1 ASC`,
		deckId, since,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ViewingSessionRepositoryImpl) DeleteAllByDeckId(ctx context.Context, deckId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("deck_id = ?", deckId).Delete(&model.ViewingSession{}).Error
}

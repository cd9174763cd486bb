package contract

import (
	"context"
	"time"

	"decktrack-be/internal/entity"
	"decktrack-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ViewerRepository interface {
	Create(ctx context.Context, viewer *entity.Viewer) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Viewer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Viewer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// RecordOpen bumps total_opens and last_viewed_at in a single atomic
	// UPDATE and merges any newly supplied optional fields. The counter uses
	// a SQL increment, never read-modify-write.
	RecordOpen(ctx context.Context, id uuid.UUID, lastViewedAt time.Time, merge map[string]interface{}) error

	// AddTimeSpent atomically adds dwell seconds to total_time_spent.
	AddTimeSpent(ctx context.Context, id uuid.UUID, seconds int) error

	DeleteAllByDeckId(ctx context.Context, deckId uuid.UUID) error
}

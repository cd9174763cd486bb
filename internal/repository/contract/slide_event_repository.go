package contract

import (
	"context"

	"decktrack-be/internal/entity"
	"decktrack-be/internal/repository/specification"

	"github.com/google/uuid"
)

// SlideAggregateRow is the per-slide rollup of navigation events.
type SlideAggregateRow struct {
	SlideNumber int `gorm:"column:slide_number"`
	Views       int `gorm:"column:views"`
	TotalTime   int `gorm:"column:total_time"`
}

type SlideEventRepository interface {
	// Create appends one immutable event. Events are never updated.
	Create(ctx context.Context, event *entity.SlideEvent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SlideEvent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// AggregateBySlide returns views and summed dwell per distinct slide
	// number, ordered by slide number ascending.
	AggregateBySlide(ctx context.Context, deckId uuid.UUID) ([]SlideAggregateRow, error)

	DeleteAllByDeckId(ctx context.Context, deckId uuid.UUID) error
}

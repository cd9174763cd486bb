package contract

import (
	"context"
	"time"

	"decktrack-be/internal/entity"
	"decktrack-be/internal/repository/specification"

	"github.com/google/uuid"
)

// DailyViewsRow is one calendar day of session starts. Days with zero
// sessions are never materialized (sparse series).
type DailyViewsRow struct {
	Date  string `gorm:"column:date"`
	Views int    `gorm:"column:views"`
}

type ViewingSessionRepository interface {
	Create(ctx context.Context, session *entity.ViewingSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ViewingSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ViewingSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Close sets ended_at and duration. Returns the number of rows touched
	// so callers can distinguish a missing session; repeating a close
	// overwrites the previous values (corrected duration report).
	Close(ctx context.Context, id uuid.UUID, endedAt time.Time, duration int) (int64, error)

	// AddCompletedPage adds a slide number to the session's visited set with
	// set semantics, as one guarded atomic UPDATE.
	AddCompletedPage(ctx context.Context, id uuid.UUID, page int) error

	// CountByDay groups session starts per calendar day within the window.
	CountByDay(ctx context.Context, deckId uuid.UUID, since time.Time) ([]DailyViewsRow, error)

	DeleteAllByDeckId(ctx context.Context, deckId uuid.UUID) error
}

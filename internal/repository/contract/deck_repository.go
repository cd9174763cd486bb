package contract

import (
	"context"

	"decktrack-be/internal/entity"
	"decktrack-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DeckRepository interface {
	Create(ctx context.Context, deck *entity.Deck) error
	Update(ctx context.Context, deck *entity.Deck) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Deck, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Deck, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

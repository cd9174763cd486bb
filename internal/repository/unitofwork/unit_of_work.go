package unitofwork

import (
	"context"

	"decktrack-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	DeckRepository() contract.DeckRepository
	ViewerRepository() contract.ViewerRepository
	ViewingSessionRepository() contract.ViewingSessionRepository
	SlideEventRepository() contract.SlideEventRepository
}

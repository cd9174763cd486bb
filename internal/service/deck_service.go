package service

import (
	"context"
	"encoding/json"
	"time"

	"decktrack-be/internal/dto"
	"decktrack-be/internal/entity"
	"decktrack-be/internal/pkg/apperror"
	"decktrack-be/internal/pkg/logger"
	"decktrack-be/internal/repository/memory"
	"decktrack-be/internal/repository/specification"
	"decktrack-be/internal/repository/unitofwork"
	"decktrack-be/pkg/engagement"
	"decktrack-be/pkg/events"

	"github.com/google/uuid"
)

type IDeckService interface {
	GetUserDecks(ctx context.Context, userId uuid.UUID) ([]*dto.DeckResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateDeckRequest) (*dto.DeckResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.DeckResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateDeckRequest) (*dto.DeckResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Analytics(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.DeckAnalyticsResponse, error)
	ViewerDetail(ctx context.Context, userId uuid.UUID, deckId, viewerId uuid.UUID) (*dto.ViewerDetailResponse, error)
}

type deckService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	aggregator       *engagement.Aggregator
	analyticsCache   *memory.AnalyticsCache
	logger           logger.ILogger
}

func NewDeckService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	aggregator *engagement.Aggregator,
	analyticsCache *memory.AnalyticsCache,
	logger logger.ILogger,
) IDeckService {
	return &deckService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		aggregator:       aggregator,
		analyticsCache:   analyticsCache,
		logger:           logger,
	}
}

func (s *deckService) GetUserDecks(ctx context.Context, userId uuid.UUID) ([]*dto.DeckResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	decks, err := uow.DeckRepository().FindAll(ctx,
		specification.DeckOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.DeckResponse, 0, len(decks))
	for _, deck := range decks {
		responses = append(responses, toDeckResponse(deck))
	}
	return responses, nil
}

func (s *deckService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateDeckRequest) (*dto.DeckResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deck := &entity.Deck{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.Title,
		FileName:    req.FileName,
		FilePath:    req.FilePath,
		FileSize:    req.FileSize,
		TotalPages:  req.TotalPages,
		IsActive:    true,
		PublicToken: uuid.NewString(),
		CreatedAt:   time.Now(),
	}
	if err := uow.DeckRepository().Create(ctx, deck); err != nil {
		return nil, err
	}

	return toDeckResponse(deck), nil
}

func (s *deckService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.DeckResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deck, err := s.ownedDeck(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	return toDeckResponse(deck), nil
}

// Update touches only the fields the request carries. The public token is
// immutable; deactivation via IsActive is how owners revoke a shared link
// without destroying its history.
func (s *deckService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateDeckRequest) (*dto.DeckResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deck, err := s.ownedDeck(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		deck.Title = *req.Title
	}
	if req.IsActive != nil {
		deck.IsActive = *req.IsActive
	}
	now := time.Now()
	deck.UpdatedAt = &now

	if err := uow.DeckRepository().Update(ctx, deck); err != nil {
		return nil, err
	}

	s.analyticsCache.Delete(deck.Id)
	return toDeckResponse(deck), nil
}

// Delete removes the deck and everything hanging off it. Dependent cleanup
// is best-effort: a failed collection is logged and the rest proceed, since
// stray orphan rows beat a stuck delete. The deck row itself goes last and
// only after every dependent collection has been attempted.
func (s *deckService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deck, err := s.ownedDeck(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.SlideEventRepository().DeleteAllByDeckId(ctx, deck.Id); err != nil {
		s.logger.Error("deck.service", "failed to delete slide events", map[string]interface{}{
			"deck_id": deck.Id.String(),
			"error":   err.Error(),
		})
	}
	if err := uow.ViewingSessionRepository().DeleteAllByDeckId(ctx, deck.Id); err != nil {
		s.logger.Error("deck.service", "failed to delete viewing sessions", map[string]interface{}{
			"deck_id": deck.Id.String(),
			"error":   err.Error(),
		})
	}
	if err := uow.ViewerRepository().DeleteAllByDeckId(ctx, deck.Id); err != nil {
		s.logger.Error("deck.service", "failed to delete viewers", map[string]interface{}{
			"deck_id": deck.Id.String(),
			"error":   err.Error(),
		})
	}
	if err := uow.DeckRepository().Delete(ctx, deck.Id); err != nil {
		return err
	}

	s.analyticsCache.Delete(deck.Id)
	s.publishEvent(ctx, events.TypeDeckDeleted, map[string]interface{}{
		"deck_id": deck.Id.String(),
		"user_id": userId.String(),
	})
	return nil
}

func (s *deckService) Analytics(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.DeckAnalyticsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedDeck(ctx, uow, userId, id); err != nil {
		return nil, err
	}

	if cached, found := s.analyticsCache.Get(id); found {
		return cached, nil
	}

	analytics, err := s.aggregator.DeckAnalytics(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	s.analyticsCache.Save(id, analytics)
	return analytics, nil
}

func (s *deckService) ViewerDetail(ctx context.Context, userId uuid.UUID, deckId, viewerId uuid.UUID) (*dto.ViewerDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedDeck(ctx, uow, userId, deckId); err != nil {
		return nil, err
	}

	return s.aggregator.ViewerDetail(ctx, uow, deckId, viewerId)
}

// ownedDeck fetches the deck and enforces ownership. A foreign deck reads as
// not-found so the route does not leak which ids exist.
func (s *deckService) ownedDeck(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, id uuid.UUID) (*entity.Deck, error) {
	deck, err := uow.DeckRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if deck == nil || deck.UserId != userId {
		return nil, apperror.NotFound("deck not found")
	}
	return deck, nil
}

func (s *deckService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	payload, err := json.Marshal(events.New(eventType, data))
	if err != nil {
		s.logger.Warn("deck.service", "failed to marshal event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("deck.service", "failed to publish event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}

func toDeckResponse(deck *entity.Deck) *dto.DeckResponse {
	return &dto.DeckResponse{
		Id:          deck.Id,
		Title:       deck.Title,
		FileName:    deck.FileName,
		TotalPages:  deck.TotalPages,
		IsActive:    deck.IsActive,
		PublicToken: deck.PublicToken,
		CreatedAt:   deck.CreatedAt,
		UpdatedAt:   deck.UpdatedAt,
	}
}

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"decktrack-be/internal/dto"
	"decktrack-be/internal/entity"
	"decktrack-be/internal/pkg/apperror"
	"decktrack-be/internal/pkg/logger"
	"decktrack-be/internal/repository/specification"
	"decktrack-be/internal/repository/unitofwork"
	"decktrack-be/pkg/engagement"
	"decktrack-be/pkg/events"

	"github.com/google/uuid"
)

type IViewerService interface {
	Access(ctx context.Context, req *dto.ViewerAccessRequest) (*dto.ViewerAccessResponse, error)
	PublicDeck(ctx context.Context, deckRef string) (*dto.PublicDeckResponse, error)
	StartSession(ctx context.Context, req *dto.StartSessionRequest, userAgent, ipAddress string) (*dto.StartSessionResponse, error)
	TrackSlide(ctx context.Context, req *dto.TrackSlideRequest) error
	EndSession(ctx context.Context, req *dto.EndSessionRequest) error
}

type viewerService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	resolver         *engagement.Resolver
	sessionTracker   *engagement.SessionTracker
	recorder         *engagement.Recorder
	logger           logger.ILogger
	baseURL          string
}

func NewViewerService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	resolver *engagement.Resolver,
	sessionTracker *engagement.SessionTracker,
	recorder *engagement.Recorder,
	logger logger.ILogger,
	baseURL string,
) IViewerService {
	return &viewerService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		resolver:         resolver,
		sessionTracker:   sessionTracker,
		recorder:         recorder,
		logger:           logger,
		baseURL:          baseURL,
	}
}

func (s *viewerService) Access(ctx context.Context, req *dto.ViewerAccessRequest) (*dto.ViewerAccessResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	viewer, isNew, err := s.resolver.Resolve(ctx, uow, engagement.ResolveInput{
		DeckId:    req.DeckId,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypeViewerResolved, map[string]interface{}{
		"viewer_id":     viewer.Id.String(),
		"deck_id":       req.DeckId.String(),
		"is_new_viewer": isNew,
	})

	return &dto.ViewerAccessResponse{
		ViewerId:    viewer.Id,
		IsNewViewer: isNew,
	}, nil
}

// PublicDeck resolves a deck by id or, failing that, by its share token. Both
// arrive on the same path parameter so old id-based links keep working.
func (s *viewerService) PublicDeck(ctx context.Context, deckRef string) (*dto.PublicDeckResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var deck *entity.Deck
	var err error
	if id, parseErr := uuid.Parse(deckRef); parseErr == nil {
		deck, err = uow.DeckRepository().FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, err
		}
	}
	if deck == nil {
		deck, err = uow.DeckRepository().FindOne(ctx, specification.ByPublicToken{Token: deckRef}, specification.ActiveOnly{})
		if err != nil {
			return nil, err
		}
	}
	if deck == nil || !deck.IsActive {
		return nil, apperror.NotFound("deck not found or inactive")
	}

	return &dto.PublicDeckResponse{
		Name:      deck.Title,
		PageCount: deck.TotalPages,
		FileUrl:   fmt.Sprintf("%s/uploads/%s", s.baseURL, deck.FileName),
		IsActive:  deck.IsActive,
	}, nil
}

func (s *viewerService) StartSession(ctx context.Context, req *dto.StartSessionRequest, userAgent, ipAddress string) (*dto.StartSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.sessionTracker.Open(ctx, uow, engagement.OpenSessionInput{
		ViewerId:  req.ViewerId,
		DeckId:    req.DeckId,
		UserAgent: userAgent,
		IpAddress: ipAddress,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypeSessionOpened, map[string]interface{}{
		"session_id": session.Id.String(),
		"viewer_id":  req.ViewerId.String(),
		"deck_id":    req.DeckId.String(),
	})

	return &dto.StartSessionResponse{
		SessionId:    session.Id,
		SessionToken: session.SessionToken,
	}, nil
}

func (s *viewerService) TrackSlide(ctx context.Context, req *dto.TrackSlideRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	err := s.recorder.Record(ctx, uow, engagement.RecordInput{
		SessionId:   req.SessionId,
		ViewerId:    req.ViewerId,
		DeckId:      req.DeckId,
		SlideNumber: req.SlideNumber,
		TimeSpent:   req.TimeSpent,
	})
	if err != nil {
		return err
	}

	data := map[string]interface{}{
		"viewer_id":    req.ViewerId.String(),
		"deck_id":      req.DeckId.String(),
		"slide_number": req.SlideNumber,
		"time_spent":   req.TimeSpent,
	}
	if req.SessionId != nil {
		data["session_id"] = req.SessionId.String()
	}
	s.publishEvent(ctx, events.TypeSlideTracked, data)

	return nil
}

func (s *viewerService) EndSession(ctx context.Context, req *dto.EndSessionRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.sessionTracker.Close(ctx, uow, req.SessionId, req.Duration); err != nil {
		return err
	}

	s.publishEvent(ctx, events.TypeSessionClosed, map[string]interface{}{
		"session_id": req.SessionId.String(),
		"duration":   req.Duration,
	})

	return nil
}

// publishEvent fans the event onto the in-process topic. Publishing never
// fails the write path; a dead pipeline loses telemetry, not tracking data.
func (s *viewerService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	payload, err := json.Marshal(events.New(eventType, data))
	if err != nil {
		s.logger.Warn("viewer.service", "failed to marshal event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("viewer.service", "failed to publish event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}

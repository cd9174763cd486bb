package engagement

import (
	"context"
	"time"

	"decktrack-be/internal/dto"
	"decktrack-be/internal/entity"
	"decktrack-be/internal/pkg/apperror"
	"decktrack-be/internal/pkg/logger"
	"decktrack-be/internal/repository/specification"
	"decktrack-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Aggregator computes deck-level and viewer-level metrics on demand from
// stored entities. Pure read side: it never mutates anything.
type Aggregator struct {
	logger     logger.ILogger
	windowDays int
}

func NewAggregator(logger logger.ILogger, windowDays int) *Aggregator {
	if windowDays <= 0 {
		windowDays = 30
	}
	return &Aggregator{
		logger:     logger,
		windowDays: windowDays,
	}
}

// DeckAnalytics derives the owner-dashboard metrics for one deck. Empty data
// is a normal deck state and yields the documented defaults, never an error.
func (a *Aggregator) DeckAnalytics(ctx context.Context, uow unitofwork.UnitOfWork, deckId uuid.UUID) (*dto.DeckAnalyticsResponse, error) {
	deck, err := uow.DeckRepository().FindOne(ctx, specification.ByID{ID: deckId})
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, apperror.NotFound("deck not found")
	}

	viewers, err := uow.ViewerRepository().FindAll(ctx,
		specification.ByDeckID{DeckID: deckId},
		specification.OrderBy{Field: "last_viewed_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	totalOpens, totalTimeSpent := sumViewerTotals(viewers)

	slideRows, err := uow.SlideEventRepository().AggregateBySlide(ctx, deckId)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -a.windowDays)
	dailyRows, err := uow.ViewingSessionRepository().CountByDay(ctx, deckId, since)
	if err != nil {
		return nil, err
	}

	viewsOverTime := make([]dto.DailyViews, len(dailyRows))
	for i, row := range dailyRows {
		viewsOverTime[i] = dto.DailyViews{Date: row.Date, Views: row.Views}
	}

	viewerList := make([]dto.ViewerResponse, len(viewers))
	for i, v := range viewers {
		viewerList[i] = toViewerResponse(v)
	}

	return &dto.DeckAnalyticsResponse{
		Deck:             toDeckResponse(deck),
		TotalViewers:     len(viewers),
		TotalOpens:       totalOpens,
		AverageTimeSpent: averageTimeSpent(totalTimeSpent, len(viewers)),
		MostViewedSlide:  mostViewedSlide(slideRows),
		DropOffSlide:     dropOffSlide(slideRows, deck.TotalPages),
		SlideStats:       slideStats(slideRows),
		ViewsOverTime:    viewsOverTime,
		Viewers:          viewerList,
	}, nil
}

// ViewerDetail expands one viewer with all their sessions, most recent
// first, each carrying its slide events in chronological order. Sessions
// without events keep an empty slice.
func (a *Aggregator) ViewerDetail(ctx context.Context, uow unitofwork.UnitOfWork, deckId, viewerId uuid.UUID) (*dto.ViewerDetailResponse, error) {
	viewer, err := uow.ViewerRepository().FindOne(ctx,
		specification.ByID{ID: viewerId},
		specification.ByDeckID{DeckID: deckId},
	)
	if err != nil {
		return nil, err
	}
	if viewer == nil {
		return nil, apperror.NotFound("viewer not found")
	}

	sessions, err := uow.ViewingSessionRepository().FindAll(ctx,
		specification.ByViewerID{ViewerID: viewerId},
		specification.ByDeckID{DeckID: deckId},
		specification.OrderBy{Field: "started_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	details := make([]dto.SessionDetail, len(sessions))
	for i, session := range sessions {
		slideEvents, err := uow.SlideEventRepository().FindAll(ctx,
			specification.BySessionID{SessionID: session.Id},
			specification.OrderBy{Field: "viewed_at", Desc: false},
		)
		if err != nil {
			return nil, err
		}

		slides := make([]dto.SessionSlide, len(slideEvents))
		for j, ev := range slideEvents {
			slides[j] = dto.SessionSlide{
				SlideNumber: ev.SlideNumber,
				TimeSpent:   ev.TimeSpent,
				ViewedAt:    ev.ViewedAt,
			}
		}

		details[i] = dto.SessionDetail{
			Id:        session.Id,
			StartedAt: session.StartedAt,
			EndedAt:   session.EndedAt,
			Duration:  session.Duration,
			Slides:    slides,
		}
	}

	resp := &dto.ViewerDetailResponse{
		Viewer:   toViewerResponse(viewer),
		Sessions: details,
	}
	return resp, nil
}

func toViewerResponse(v *entity.Viewer) dto.ViewerResponse {
	return dto.ViewerResponse{
		Id:             v.Id,
		DeckId:         v.DeckId,
		Email:          v.Email,
		FirstName:      v.FirstName,
		LastName:       v.LastName,
		Company:        v.Company,
		FirstViewedAt:  v.FirstViewedAt,
		LastViewedAt:   v.LastViewedAt,
		TotalOpens:     v.TotalOpens,
		TotalTimeSpent: v.TotalTimeSpent,
	}
}

func toDeckResponse(d *entity.Deck) dto.DeckResponse {
	return dto.DeckResponse{
		Id:          d.Id,
		Title:       d.Title,
		FileName:    d.FileName,
		TotalPages:  d.TotalPages,
		IsActive:    d.IsActive,
		PublicToken: d.PublicToken,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

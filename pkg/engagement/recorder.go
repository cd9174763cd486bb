package engagement

import (
	"context"
	"time"

	"decktrack-be/internal/entity"
	"decktrack-be/internal/pkg/apperror"
	"decktrack-be/internal/pkg/logger"
	"decktrack-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type RecordInput struct {
	// SessionId is nil when tracking arrives before a session exists; the
	// event is then stored unlinked and excluded from session-scoped counts.
	SessionId   *uuid.UUID
	ViewerId    uuid.UUID
	DeckId      uuid.UUID
	SlideNumber int
	// TimeSpent is dwell on the slide being left, known only once the
	// viewer moves on. 0 for the first event of a session.
	TimeSpent int
}

// Recorder appends slide navigation events and feeds the derived viewer and
// session aggregates.
type Recorder struct {
	logger logger.ILogger
}

func NewRecorder(logger logger.ILogger) *Recorder {
	return &Recorder{
		logger: logger,
	}
}

// Record writes one immutable event, adds the slide to the owning session's
// visited set and bumps the viewer's cumulative dwell counter. The three
// writes are independent; a partial failure surfaces to the caller and
// self-heals on the next navigation. Out-of-range slide numbers are recorded
// as-is: page counts can be recomputed later and clamping would corrupt
// history.
func (r *Recorder) Record(ctx context.Context, uow unitofwork.UnitOfWork, in RecordInput) error {
	if in.DeckId == uuid.Nil {
		return apperror.InvalidInput("deck id is required")
	}
	if in.ViewerId == uuid.Nil {
		return apperror.InvalidInput("viewer id is required")
	}
	if in.SlideNumber == 0 {
		return apperror.InvalidInput("slide number is required")
	}

	event := &entity.SlideEvent{
		Id:          uuid.New(),
		SessionId:   in.SessionId,
		ViewerId:    in.ViewerId,
		DeckId:      in.DeckId,
		SlideNumber: in.SlideNumber,
		ViewedAt:    time.Now(),
		TimeSpent:   in.TimeSpent,
	}
	if err := uow.SlideEventRepository().Create(ctx, event); err != nil {
		return err
	}

	if in.SessionId != nil {
		if err := uow.ViewingSessionRepository().AddCompletedPage(ctx, *in.SessionId, in.SlideNumber); err != nil {
			return err
		}
	}

	if in.TimeSpent > 0 {
		if err := uow.ViewerRepository().AddTimeSpent(ctx, in.ViewerId, in.TimeSpent); err != nil {
			return err
		}
	}

	r.logger.Debug("engagement.recorder", "tracked slide view", map[string]interface{}{
		"deck_id":      in.DeckId.String(),
		"viewer_id":    in.ViewerId.String(),
		"slide_number": in.SlideNumber,
	})
	return nil
}

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

type OpenSessionInput struct {
	ViewerId  uuid.UUID
	DeckId    uuid.UUID
	UserAgent string
	IpAddress string
}

// SessionTracker opens and closes bounded-lifetime viewing sessions.
// A session moves Open -> Closed and never back.
type SessionTracker struct {
	logger   logger.ILogger
	recorder *Recorder
}

func NewSessionTracker(logger logger.ILogger, recorder *Recorder) *SessionTracker {
	return &SessionTracker{
		logger:   logger,
		recorder: recorder,
	}
}

// Open always creates a brand-new session with a fresh token; each browser
// tab/visit is its own session even for a known viewer. The first slide is
// recorded immediately with zero dwell so first-slide views are counted even
// when the viewer never navigates.
func (t *SessionTracker) Open(ctx context.Context, uow unitofwork.UnitOfWork, in OpenSessionInput) (*entity.ViewingSession, error) {
	if in.ViewerId == uuid.Nil {
		return nil, apperror.InvalidInput("viewer id is required")
	}
	if in.DeckId == uuid.Nil {
		return nil, apperror.InvalidInput("deck id is required")
	}

	session := &entity.ViewingSession{
		Id:             uuid.New(),
		ViewerId:       in.ViewerId,
		DeckId:         in.DeckId,
		SessionToken:   uuid.NewString(),
		StartedAt:      time.Now(),
		CompletedPages: []int{},
		UserAgent:      in.UserAgent,
		IpAddress:      in.IpAddress,
	}
	if err := uow.ViewingSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	if err := t.recorder.Record(ctx, uow, RecordInput{
		SessionId:   &session.Id,
		ViewerId:    in.ViewerId,
		DeckId:      in.DeckId,
		SlideNumber: 1,
		TimeSpent:   0,
	}); err != nil {
		return nil, err
	}

	t.logger.Info("engagement.sessions", "opened session", map[string]interface{}{
		"session_id": session.Id.String(),
		"viewer_id":  in.ViewerId.String(),
		"deck_id":    in.DeckId.String(),
	})
	return session, nil
}

// Close marks the session ended with the client-computed duration. The
// session id alone is authoritative. Closing an already-closed session
// overwrites end/duration: callers retry, and the design treats the repeat
// as a corrected duration report rather than an error.
func (t *SessionTracker) Close(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID, duration int) error {
	if sessionId == uuid.Nil {
		return apperror.InvalidInput("session id is required")
	}
	if duration < 0 {
		return apperror.InvalidInput("duration must not be negative")
	}

	affected, err := uow.ViewingSessionRepository().Close(ctx, sessionId, time.Now(), duration)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NotFound("session not found")
	}

	t.logger.Info("engagement.sessions", "closed session", map[string]interface{}{
		"session_id": sessionId.String(),
		"duration":   duration,
	})
	return nil
}

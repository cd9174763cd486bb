package engagement

import (
	"context"
	"errors"
	"time"

	"decktrack-be/internal/entity"
	"decktrack-be/internal/pkg/apperror"
	"decktrack-be/internal/pkg/logger"
	"decktrack-be/internal/repository/specification"
	"decktrack-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResolveInput struct {
	DeckId    uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Company   string
}

// Resolver maps a (deck, email) pair to a persistent viewer identity.
type Resolver struct {
	logger logger.ILogger
}

func NewResolver(logger logger.ILogger) *Resolver {
	return &Resolver{
		logger: logger,
	}
}

// Resolve upserts the viewer for (deckId, normalized email). An existing
// viewer gets an atomic open-count bump, a fresh last-seen and a
// non-destructive merge of any newly supplied fields; otherwise a new viewer
// is created with open count 1. The second return value reports whether the
// viewer was created.
func (r *Resolver) Resolve(ctx context.Context, uow unitofwork.UnitOfWork, in ResolveInput) (*entity.Viewer, bool, error) {
	if in.DeckId == uuid.Nil {
		return nil, false, apperror.InvalidInput("deck id is required")
	}
	email := NormalizeEmail(in.Email)
	if email == "" {
		return nil, false, apperror.InvalidInput("email is required")
	}

	deck, err := uow.DeckRepository().FindOne(ctx, specification.ByID{ID: in.DeckId})
	if err != nil {
		return nil, false, err
	}
	if deck == nil || !deck.IsActive {
		return nil, false, apperror.NotFound("deck not found or inactive")
	}

	viewer, err := uow.ViewerRepository().FindOne(ctx,
		specification.ByDeckID{DeckID: in.DeckId},
		specification.ByEmail{Email: email},
	)
	if err != nil {
		return nil, false, err
	}

	if viewer != nil {
		return r.recordReturn(ctx, uow, viewer, in)
	}

	now := time.Now()
	viewer = &entity.Viewer{
		Id:            uuid.New(),
		DeckId:        in.DeckId,
		Email:         email,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Company:       in.Company,
		FirstViewedAt: now,
		LastViewedAt:  now,
		TotalOpens:    1,
		CreatedAt:     now,
	}
	if err := uow.ViewerRepository().Create(ctx, viewer); err != nil {
		// Two tabs submitting the same email can race past the lookup; the
		// unique (deck_id, email) index turns the loser into an update.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, findErr := uow.ViewerRepository().FindOne(ctx,
				specification.ByDeckID{DeckID: in.DeckId},
				specification.ByEmail{Email: email},
			)
			if findErr != nil {
				return nil, false, findErr
			}
			if existing != nil {
				return r.recordReturn(ctx, uow, existing, in)
			}
			return nil, false, apperror.Conflict("viewer already exists", err)
		}
		return nil, false, err
	}

	r.logger.Info("engagement.resolver", "created new viewer", map[string]interface{}{
		"viewer_id": viewer.Id.String(),
		"deck_id":   in.DeckId.String(),
	})
	return viewer, true, nil
}

func (r *Resolver) recordReturn(ctx context.Context, uow unitofwork.UnitOfWork, viewer *entity.Viewer, in ResolveInput) (*entity.Viewer, bool, error) {
	now := time.Now()
	merge := MergeFields(in.FirstName, in.LastName, in.Company)

	if err := uow.ViewerRepository().RecordOpen(ctx, viewer.Id, now, merge); err != nil {
		return nil, false, err
	}

	// Mirror the atomic update on the in-memory copy for the caller.
	viewer.TotalOpens++
	viewer.LastViewedAt = now
	if v, ok := merge["first_name"]; ok {
		viewer.FirstName = v.(string)
	}
	if v, ok := merge["last_name"]; ok {
		viewer.LastName = v.(string)
	}
	if v, ok := merge["company"]; ok {
		viewer.Company = v.(string)
	}

	r.logger.Info("engagement.resolver", "updated returning viewer", map[string]interface{}{
		"viewer_id": viewer.Id.String(),
		"deck_id":   viewer.DeckId.String(),
	})
	return viewer, false, nil
}

package integration

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"decktrack-be/internal/entity"
	"decktrack-be/internal/pkg/apperror"
	"decktrack-be/internal/pkg/logger"
	"decktrack-be/internal/repository/memory"
	"decktrack-be/internal/repository/specification"
	"decktrack-be/internal/repository/unitofwork"
	"decktrack-be/internal/service"
	"decktrack-be/pkg/database"
	"decktrack-be/pkg/engagement"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	uowFactory unitofwork.RepositoryFactory
	uow        unitofwork.UnitOfWork
	resolver   *engagement.Resolver
	recorder   *engagement.Recorder
	tracker    *engagement.SessionTracker
	aggregator *engagement.Aggregator
	deck       *entity.Deck
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "Failed to connect to DB")

	testLogger := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log"))
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	recorder := engagement.NewRecorder(testLogger)

	env := &testEnv{
		uowFactory: uowFactory,
		uow:        uow,
		resolver:   engagement.NewResolver(testLogger),
		recorder:   recorder,
		tracker:    engagement.NewSessionTracker(testLogger, recorder),
		aggregator: engagement.NewAggregator(testLogger, 30),
	}

	env.deck = env.createDeck(t)
	return env
}

func (e *testEnv) createDeck(t *testing.T) *entity.Deck {
	t.Helper()
	ctx := context.Background()

	user := &entity.User{
		Id:           uuid.New(),
		Email:        "owner-" + uuid.NewString() + "@example.com",
		PasswordHash: "not-a-real-hash",
		FullName:     "Integration Test Owner",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, e.uow.UserRepository().Create(ctx, user))

	deck := &entity.Deck{
		Id:          uuid.New(),
		UserId:      user.Id,
		Title:       "Integration Deck",
		FileName:    "deck.pdf",
		TotalPages:  5,
		IsActive:    true,
		PublicToken: uuid.NewString(),
		CreatedAt:   time.Now(),
	}
	require.NoError(t, e.uow.DeckRepository().Create(ctx, deck))

	t.Cleanup(func() {
		_ = e.uow.SlideEventRepository().DeleteAllByDeckId(ctx, deck.Id)
		_ = e.uow.ViewingSessionRepository().DeleteAllByDeckId(ctx, deck.Id)
		_ = e.uow.ViewerRepository().DeleteAllByDeckId(ctx, deck.Id)
		_ = e.uow.DeckRepository().Delete(ctx, deck.Id)
	})
	return deck
}

func (e *testEnv) resolve(t *testing.T, email string) (*entity.Viewer, bool) {
	t.Helper()
	viewer, isNew, err := e.resolver.Resolve(context.Background(), e.uow, engagement.ResolveInput{
		DeckId: e.deck.Id,
		Email:  email,
	})
	require.NoError(t, err)
	return viewer, isNew
}

func TestViewerResolution(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	email := "viewer-" + uuid.NewString() + "@example.com"

	viewer, isNew := env.resolve(t, email)
	assert.True(t, isNew, "first resolve should create the viewer")
	assert.Equal(t, 1, viewer.TotalOpens)

	again, isNew := env.resolve(t, email)
	assert.False(t, isNew, "second resolve should find the same viewer")
	assert.Equal(t, viewer.Id, again.Id)

	stored, err := env.uow.ViewerRepository().FindOne(ctx, specification.ByID{ID: viewer.Id})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 2, stored.TotalOpens, "each resolve counts one open")

	t.Run("email is normalized", func(t *testing.T) {
		shouty, isNew := env.resolve(t, "  "+uuid.NewString()+"UPPER@Example.COM ")
		assert.True(t, isNew)
		assert.Equal(t, shouty.Email, engagement.NormalizeEmail(shouty.Email))
	})

	t.Run("optional fields backfill without overwriting", func(t *testing.T) {
		first, _, err := env.resolver.Resolve(ctx, env.uow, engagement.ResolveInput{
			DeckId:    env.deck.Id,
			Email:     "backfill-" + uuid.NewString() + "@example.com",
			FirstName: "Jane",
		})
		require.NoError(t, err)

		_, _, err = env.resolver.Resolve(ctx, env.uow, engagement.ResolveInput{
			DeckId:  env.deck.Id,
			Email:   first.Email,
			Company: "Acme",
		})
		require.NoError(t, err)

		stored, err := env.uow.ViewerRepository().FindOne(ctx, specification.ByID{ID: first.Id})
		require.NoError(t, err)
		assert.Equal(t, "Jane", stored.FirstName, "existing field survives a blank on re-resolve")
		assert.Equal(t, "Acme", stored.Company, "newly supplied field is filled in")
	})

	t.Run("unknown deck rejected", func(t *testing.T) {
		_, _, err := env.resolver.Resolve(ctx, env.uow, engagement.ResolveInput{
			DeckId: uuid.New(),
			Email:  "nobody@example.com",
		})
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestSessionLifecycle(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	viewer, _ := env.resolve(t, "session-"+uuid.NewString()+"@example.com")

	session, err := env.tracker.Open(ctx, env.uow, engagement.OpenSessionInput{
		ViewerId:  viewer.Id,
		DeckId:    env.deck.Id,
		UserAgent: "integration-test",
		IpAddress: "127.0.0.1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionToken)

	t.Run("opening records the first slide", func(t *testing.T) {
		events, err := env.uow.SlideEventRepository().FindAll(ctx, specification.BySessionID{SessionID: session.Id})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, 1, events[0].SlideNumber)
		assert.Equal(t, 0, events[0].TimeSpent)

		stored, err := env.uow.ViewingSessionRepository().FindOne(ctx, specification.ByID{ID: session.Id})
		require.NoError(t, err)
		assert.Equal(t, []int{1}, stored.CompletedPages)
		assert.True(t, stored.IsOpen())
	})

	t.Run("repeat navigation keeps set semantics", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			err := env.recorder.Record(ctx, env.uow, engagement.RecordInput{
				SessionId:   &session.Id,
				ViewerId:    viewer.Id,
				DeckId:      env.deck.Id,
				SlideNumber: 2,
				TimeSpent:   5,
			})
			require.NoError(t, err)
		}

		stored, err := env.uow.ViewingSessionRepository().FindOne(ctx, specification.ByID{ID: session.Id})
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{1, 2}, stored.CompletedPages, "completed pages stay a set")

		count, err := env.uow.SlideEventRepository().Count(ctx, specification.BySessionID{SessionID: session.Id})
		require.NoError(t, err)
		assert.Equal(t, int64(4), count, "every navigation appends an event")

		storedViewer, err := env.uow.ViewerRepository().FindOne(ctx, specification.ByID{ID: viewer.Id})
		require.NoError(t, err)
		assert.Equal(t, 15, storedViewer.TotalTimeSpent, "dwell accumulates on the viewer")
	})

	t.Run("close is an idempotent overwrite", func(t *testing.T) {
		require.NoError(t, env.tracker.Close(ctx, env.uow, session.Id, 60))

		stored, err := env.uow.ViewingSessionRepository().FindOne(ctx, specification.ByID{ID: session.Id})
		require.NoError(t, err)
		require.NotNil(t, stored.EndedAt)
		assert.Equal(t, 60, stored.Duration)

		// A retried close with a corrected duration wins.
		require.NoError(t, env.tracker.Close(ctx, env.uow, session.Id, 75))
		stored, err = env.uow.ViewingSessionRepository().FindOne(ctx, specification.ByID{ID: session.Id})
		require.NoError(t, err)
		assert.Equal(t, 75, stored.Duration)
	})

	t.Run("closing an unknown session fails", func(t *testing.T) {
		err := env.tracker.Close(ctx, env.uow, uuid.New(), 10)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("unlinked event still counts for the deck", func(t *testing.T) {
		err := env.recorder.Record(ctx, env.uow, engagement.RecordInput{
			SessionId:   nil,
			ViewerId:    viewer.Id,
			DeckId:      env.deck.Id,
			SlideNumber: 3,
			TimeSpent:   2,
		})
		require.NoError(t, err)

		deckEvents, err := env.uow.SlideEventRepository().Count(ctx, specification.ByDeckID{DeckID: env.deck.Id})
		require.NoError(t, err)
		assert.Equal(t, int64(5), deckEvents)

		sessionEvents, err := env.uow.SlideEventRepository().Count(ctx, specification.BySessionID{SessionID: session.Id})
		require.NoError(t, err)
		assert.Equal(t, int64(4), sessionEvents, "unlinked events stay out of session scope")
	})
}

func TestDeckAnalytics(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	t.Run("empty deck returns defaults", func(t *testing.T) {
		analytics, err := env.aggregator.DeckAnalytics(ctx, env.uow, env.deck.Id)
		require.NoError(t, err)
		assert.Equal(t, 0, analytics.TotalViewers)
		assert.Equal(t, 0, analytics.AverageTimeSpent)
		assert.Equal(t, 1, analytics.MostViewedSlide)
		assert.Equal(t, env.deck.TotalPages, analytics.DropOffSlide)
		assert.Empty(t, analytics.ViewsOverTime)
	})

	t.Run("unknown deck is an error", func(t *testing.T) {
		_, err := env.aggregator.DeckAnalytics(ctx, env.uow, uuid.New())
		assert.True(t, apperror.IsNotFound(err))
	})

	viewer, _ := env.resolve(t, "analytics-"+uuid.NewString()+"@example.com")
	session, err := env.tracker.Open(ctx, env.uow, engagement.OpenSessionInput{
		ViewerId: viewer.Id,
		DeckId:   env.deck.Id,
	})
	require.NoError(t, err)

	// Slide 1 was recorded at open; view slide 2 twice so it leads.
	for i := 0; i < 2; i++ {
		require.NoError(t, env.recorder.Record(ctx, env.uow, engagement.RecordInput{
			SessionId:   &session.Id,
			ViewerId:    viewer.Id,
			DeckId:      env.deck.Id,
			SlideNumber: 2,
			TimeSpent:   10,
		}))
	}
	require.NoError(t, env.tracker.Close(ctx, env.uow, session.Id, 20))

	t.Run("aggregates reflect recorded activity", func(t *testing.T) {
		analytics, err := env.aggregator.DeckAnalytics(ctx, env.uow, env.deck.Id)
		require.NoError(t, err)

		assert.Equal(t, 1, analytics.TotalViewers)
		assert.Equal(t, 1, analytics.TotalOpens)
		assert.Equal(t, 20, analytics.AverageTimeSpent)
		assert.Equal(t, 2, analytics.MostViewedSlide)
		assert.Equal(t, 1, analytics.DropOffSlide, "least-viewed slide marks the drop-off")
		require.Len(t, analytics.SlideStats, 2)
		assert.Equal(t, 2, analytics.SlideStats[1].Views)
		require.Len(t, analytics.ViewsOverTime, 1, "one active day in the window")
		assert.Equal(t, 1, analytics.ViewsOverTime[0].Views)
		require.Len(t, analytics.Viewers, 1)
		assert.Equal(t, viewer.Id, analytics.Viewers[0].Id)
	})

	t.Run("viewer detail lists sessions and ordered events", func(t *testing.T) {
		detail, err := env.aggregator.ViewerDetail(ctx, env.uow, env.deck.Id, viewer.Id)
		require.NoError(t, err)

		require.Len(t, detail.Sessions, 1)
		events := detail.Sessions[0].Slides
		require.Len(t, events, 3)
		for i := 1; i < len(events); i++ {
			assert.False(t, events[i].ViewedAt.Before(events[i-1].ViewedAt), "events must be chronological")
		}
	})

	t.Run("viewer detail rejects unknown viewer", func(t *testing.T) {
		_, err := env.aggregator.ViewerDetail(ctx, env.uow, env.deck.Id, uuid.New())
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestDeckCascadeDelete(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	testLogger := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "svc.log"))
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	deckService := service.NewDeckService(
		env.uowFactory,
		service.NewPublisherService("ENGAGEMENT_EVENTS_TEST", pubSub),
		env.aggregator,
		memory.NewAnalyticsCache(time.Minute),
		testLogger,
	)

	viewer, _ := env.resolve(t, "cascade-"+uuid.NewString()+"@example.com")
	session, err := env.tracker.Open(ctx, env.uow, engagement.OpenSessionInput{
		ViewerId: viewer.Id,
		DeckId:   env.deck.Id,
	})
	require.NoError(t, err)
	require.NoError(t, env.recorder.Record(ctx, env.uow, engagement.RecordInput{
		SessionId:   &session.Id,
		ViewerId:    viewer.Id,
		DeckId:      env.deck.Id,
		SlideNumber: 2,
		TimeSpent:   5,
	}))

	require.NoError(t, deckService.Delete(ctx, env.deck.UserId, env.deck.Id))

	for name, count := range map[string]func() (int64, error){
		"viewers": func() (int64, error) {
			return env.uow.ViewerRepository().Count(ctx, specification.ByDeckID{DeckID: env.deck.Id})
		},
		"sessions": func() (int64, error) {
			return env.uow.ViewingSessionRepository().Count(ctx, specification.ByDeckID{DeckID: env.deck.Id})
		},
		"events": func() (int64, error) {
			return env.uow.SlideEventRepository().Count(ctx, specification.ByDeckID{DeckID: env.deck.Id})
		},
	} {
		n, err := count()
		require.NoError(t, err)
		assert.Zero(t, n, "%s should be gone after cascade delete", name)
	}

	_, err = env.aggregator.DeckAnalytics(ctx, env.uow, env.deck.Id)
	assert.True(t, apperror.IsNotFound(err), "analytics on a deleted deck must be NotFound")
}

package bootstrap

import (
	"time"

	"decktrack-be/internal/config"
	"decktrack-be/internal/controller"
	"decktrack-be/internal/pkg/logger"
	"decktrack-be/internal/repository/memory"
	"decktrack-be/internal/repository/unitofwork"
	"decktrack-be/internal/service"
	"decktrack-be/pkg/engagement"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController   controller.IAuthController
	DeckController   controller.IDeckController
	ViewerController controller.IViewerController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// The engagement stream gets its own file so the event firehose never
	// drowns out application logs.
	engagementLogger := logger.NewIsolatedLogger(cfg.App.EngagementLogPath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Engagement Core
	resolver := engagement.NewResolver(sysLogger)
	recorder := engagement.NewRecorder(sysLogger)
	sessionTracker := engagement.NewSessionTracker(sysLogger, recorder)
	aggregator := engagement.NewAggregator(sysLogger, cfg.Tracking.ViewsWindowDays)
	analyticsCache := memory.NewAnalyticsCache(time.Duration(cfg.Tracking.AnalyticsCacheTTL) * time.Second)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Tracking.EventTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Tracking.EventTopic, engagementLogger)

	authService := service.NewAuthService(uowFactory, cfg.Auth)
	viewerService := service.NewViewerService(
		uowFactory,
		publisherService,
		resolver,
		sessionTracker,
		recorder,
		sysLogger,
		cfg.App.BaseURL,
	)
	deckService := service.NewDeckService(
		uowFactory,
		publisherService,
		aggregator,
		analyticsCache,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		AuthController:   controller.NewAuthController(authService),
		DeckController:   controller.NewDeckController(deckService),
		ViewerController: controller.NewViewerController(viewerService),
		ConsumerService:  consumerService,
	}
}

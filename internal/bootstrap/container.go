package bootstrap

import (
	"context"
	"log"
	"math/rand"
	"time"

	"signal-for-good-be/internal/analytics"
	"signal-for-good-be/internal/config"
	"signal-for-good-be/internal/controller"
	"signal-for-good-be/internal/pkg/logger"
	"signal-for-good-be/internal/pkg/mailer"
	"signal-for-good-be/internal/repository/unitofwork"
	"signal-for-good-be/internal/scheduler"
	"signal-for-good-be/internal/service"
	"signal-for-good-be/internal/websocket"
	"signal-for-good-be/pkg/llm/factory"

	pktNats "signal-for-good-be/pkg/nats"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	MissionController  controller.IMissionController
	StatusController   controller.IStatusController
	DonationController controller.IDonationController
	OpsController      controller.IOpsController
	AdminController    controller.IAdminController
	SitemapController  controller.ISitemapController
	FeedController     controller.IFeedController

	// Background components (exposed for main.go to run)
	Scheduler    *scheduler.Scheduler
	FeedService  service.IFeedService
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		natsSub = nil
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	if llmProvider != nil {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	} else {
		log.Printf("[INFO] No LLM provider configured, debates use template text")
	}

	tracker := analytics.NewTracker(sysLogger)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// 3. Services
	statusService := service.NewStatusService(uowFactory)
	missionService := service.NewMissionService(uowFactory)
	sitemapService := service.NewSitemapService(uowFactory, cfg.App.BaseURL)
	cycleService := service.NewCycleService(
		uowFactory,
		sysLogger,
		natsPub,
		llmProvider,
		time.Duration(cfg.Generator.LeaseSeconds)*time.Second,
		rng,
	)
	seedService := service.NewSeedService(uowFactory, sysLogger, natsPub, rng)
	donationService := service.NewDonationService(
		uowFactory,
		sysLogger,
		natsPub,
		emailService,
		tracker,
		cfg.Payment.MidtransServerKey,
		cfg.Payment.MidtransIsProduction,
	)
	adminService := service.NewAdminService(uowFactory, sysLogger, tracker)

	// 4. Background workers
	var feedService service.IFeedService
	if natsSub != nil {
		feedService = service.NewFeedService(natsSub, wsHub, sysLogger)
	}

	var sched *scheduler.Scheduler
	if cfg.Generator.Enabled {
		sched = scheduler.New(cycleService, sysLogger, cfg.Generator.CronSpec)
	}

	if _, err := statusService.EnsureStatusRow(context.Background()); err != nil {
		log.Printf("[WARN] Failed to ensure system status row: %v", err)
	}

	return &Container{
		MissionController:  controller.NewMissionController(missionService),
		StatusController:   controller.NewStatusController(statusService),
		DonationController: controller.NewDonationController(donationService),
		OpsController:      controller.NewOpsController(cycleService, seedService),
		AdminController:    controller.NewAdminController(adminService),
		SitemapController:  controller.NewSitemapController(sitemapService),
		FeedController:     controller.NewFeedController(wsHub),

		Scheduler:    sched,
		FeedService:  feedService,
		WebSocketHub: wsHub,

		Logger: sysLogger,
	}
}

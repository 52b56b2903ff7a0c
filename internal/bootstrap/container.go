package bootstrap

import (
	"context"
	"log"

	"laptop-advisor-be/internal/config"
	"laptop-advisor-be/internal/controller"
	"laptop-advisor-be/internal/pkg/logger"
	"laptop-advisor-be/internal/repository/implementation"
	"laptop-advisor-be/internal/repository/memory"
	"laptop-advisor-be/internal/service"
	"laptop-advisor-be/pkg/classifier"
	"laptop-advisor-be/pkg/llm/factory"
	"laptop-advisor-be/pkg/moderation"
	"laptop-advisor-be/pkg/scraper"

	pktNats "laptop-advisor-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController   controller.IChatController
	LaptopController controller.ILaptopController
	PriceController  controller.IPriceController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	laptopRepo := implementation.NewLaptopRepository(db)
	sessionRepo := memory.NewSessionRepository()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.Groq,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	featureClassifier := classifier.New(llmProvider)

	// 3.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Keys.ClassifyTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.ClassifyTopic,
		laptopRepo,
		featureClassifier,
	)

	chatService := service.NewChatService(
		sessionRepo,
		laptopRepo,
		llmProvider,
		moderation.NewChecker(),
		natsPub,
		sysLogger,
	)
	laptopService := service.NewLaptopService(laptopRepo, publisherService, sysLogger)
	priceService := service.NewPriceService(scraper.NewAggregator(), rdb, sysLogger)

	// 5. Controllers
	return &Container{
		ChatController:   controller.NewChatController(chatService),
		LaptopController: controller.NewLaptopController(laptopService),
		PriceController:  controller.NewPriceController(priceService),

		ConsumerService: consumerService,
	}
}

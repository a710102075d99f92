package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"talent-service/internal/config"
	"talent-service/internal/database/mongo"
	"talent-service/internal/database/redis"
	"talent-service/internal/event"
	"talent-service/internal/handlers"
	"talent-service/internal/llm"
	"talent-service/internal/middleware"
	"talent-service/internal/repository"
	"talent-service/internal/services"
	"talent-service/internal/trends"
	"talent-service/pkg/discovery"

	"github.com/gofiber/fiber/v3"
)

func setupLogging() (*os.File, error) {
	logDir := filepath.Join("/evolvia", "log", "talent_service")
	err := os.MkdirAll(logDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.ServiceConfig

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	app.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Talent Service is healthy")
	})

	app.Use(middleware.AuthMiddleware(cfg))

	// Initialize repositories
	engineerRepo := repository.NewEngineerRepository(mongo.Mongo_Database, "engineers")
	skillRepo := repository.NewSkillRepository(mongo.Mongo_Database, "skills")
	engineerSkillRepo := repository.NewEngineerSkillRepository(mongo.Mongo_Database, "engineer_skills")
	focusRepo := repository.NewTrendFocusRepository(mongo.Mongo_Database, "trend_focuses")
	recommendationRepo := repository.NewRecommendationRepository(mongo.Mongo_Database, "trend_recommendations")
	activityRepo := repository.NewActivityRepository(mongo.Mongo_Database, "learning_activities")
	redisRepo := repository.NewRedisRepo()

	initIndexes(engineerRepo, skillRepo, engineerSkillRepo, focusRepo, recommendationRepo, activityRepo)

	// Initialize the LLM client; assessment and generation degrade to
	// heuristics without it
	if err := llm.InitLLMClient(); err != nil {
		log.Printf("Warning: LLM client unavailable, running with heuristic fallbacks: %v", err)
	}
	llmClient := llm.GetLLMClient()

	// Initialize event publisher
	eventPublisher, err := event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
	if err != nil {
		log.Printf("Warning: Failed to initialize event publisher: %v", err)
	}

	// Service discovery
	serviceRegistry, err := discovery.NewServiceRegistry(cfg)
	if err != nil {
		log.Printf("Warning: Failed to create Consul client: %v", err)
	} else if err := serviceRegistry.Register(); err != nil {
		log.Printf("Warning: Failed to register with Consul: %v", err)
	}

	// Initialize services
	catalogCache := trends.NewCatalogCache(cfg.Trends.CacheTTL, time.Now)
	catalogService := trends.NewCatalogService(catalogCache, redisRepo, llmClient)
	catalogClient := trends.NewCatalogClient(resolveCatalogURL(serviceRegistry, cfg))
	recommender := trends.NewRecommender(catalogClient, llmClient, cfg.Trends.MaxRecommendations)

	onboardingService := services.NewOnboardingService(engineerRepo, skillRepo, engineerSkillRepo, llmClient, eventPublisher)
	trendService := services.NewTrendService(engineerRepo, engineerSkillRepo, focusRepo, recommendationRepo, activityRepo, recommender, eventPublisher)
	activityService := services.NewActivityService(engineerRepo, activityRepo, focusRepo, eventPublisher)

	// Initialize event consumer so sibling services can push learning
	// activities onto engineer timelines
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	eventConsumer, err := event.NewEventConsumer(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange, activityService)
	if err != nil {
		log.Printf("Warning: Failed to initialize event consumer: %v", err)
	} else {
		if err := eventConsumer.Start(consumerCtx); err != nil {
			log.Printf("Warning: Failed to start event consumer: %v", err)
			eventConsumer.Close()
			eventConsumer = nil
		} else {
			log.Println("Successfully started event consumer for learning activities")
		}
	}

	// Initialize and register handlers
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)
	onboardingHandler.RegisterRoutes(app)

	trendsHandler := handlers.NewTrendsHandler(trendService, activityService, catalogService)
	trendsHandler.RegisterRoutes(app)

	shutdownChan := make(chan os.Signal, 1)
	doneChan := make(chan bool, 1)

	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	publishSystemEvent(eventPublisher, event.EventTypeServiceStarted, cfg.Server.ServiceName)

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := app.Listen(fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
		doneChan <- true
	}()

	<-shutdownChan
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	publishSystemEvent(eventPublisher, event.EventTypeServiceStopped, cfg.Server.ServiceName)

	// Close event publisher
	if eventPublisher != nil {
		if err := eventPublisher.Close(); err != nil {
			log.Printf("Error closing event publisher: %v", err)
		}
	}

	// Close event consumer
	if eventConsumer != nil {
		if err := eventConsumer.Close(); err != nil {
			log.Printf("Error closing event consumer: %v", err)
		}
	}

	// Disconnect from data stores
	mongo.DisconnectMongo()
	redis.CloseRedis()

	// Deregister from service discovery
	if serviceRegistry != nil {
		if err := serviceRegistry.Deregister(); err != nil {
			log.Printf("Error deregistering from service discovery: %v", err)
		}
	}

	<-doneChan
	log.Println("Server shutdown complete")
}

func publishSystemEvent(publisher *event.EventPublisher, eventType, serviceName string) {
	if publisher == nil {
		return
	}
	err := publisher.PublishSystemEvent(&event.SystemEvent{
		EventType:   eventType,
		ServiceName: serviceName,
		Timestamp:   time.Now().Unix(),
	})
	if err != nil {
		log.Printf("Failed to publish system event %s: %v", eventType, err)
	}
}

type indexInitializer interface {
	InitializeIndexes(ctx context.Context) error
}

func initIndexes(repos ...indexInitializer) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, repo := range repos {
		if err := repo.InitializeIndexes(ctx); err != nil {
			log.Printf("Warning: Failed to initialize indexes: %v", err)
		}
	}
}

// resolveCatalogURL prefers a Consul-resolved sibling catalog endpoint and
// falls back to the configured URL
func resolveCatalogURL(registry *discovery.ServiceRegistry, cfg *config.Config) func() string {
	return func() string {
		if registry != nil {
			if address, err := registry.GetServiceAddress(cfg.Trends.CatalogServiceName); err == nil {
				return fmt.Sprintf("http://%s/trends", address)
			}
		}
		return cfg.Trends.CatalogURL
	}
}

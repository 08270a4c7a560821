// @title Open-Instruct API
// @version 1.0
// @description Generates Bloom's Taxonomy learning objectives and quiz questions with a local LLM.
// @host localhost:8000
// @BasePath /
// @schemes http
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"open-instruct/internal/adapter"
	"open-instruct/internal/adapter/ollamagen"
	"open-instruct/internal/cache"
	"open-instruct/internal/config"
	"open-instruct/internal/database"
	"open-instruct/internal/handler"
	"open-instruct/internal/logger"
	"open-instruct/internal/middleware"
	"open-instruct/internal/repository"
	"open-instruct/internal/service"

	_ "open-instruct/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("request_id", middleware.RequestID(c)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Ollama client and generators
	llmClient, err := ollamagen.NewClient(cfg.Ollama)
	if err != nil {
		appLogger.Fatal("Failed to create Ollama client", zap.Error(err))
	}
	appLogger.Info("Ollama client initialized",
		zap.String("base_url", cfg.Ollama.BaseURL),
		zap.String("model", cfg.Ollama.Model))

	objectiveGenerator := ollamagen.NewObjectiveGenerator(llmClient)
	quizGenerator := ollamagen.NewQuizGenerator(llmClient)

	// Connect to database
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Postgres")

	// Initialize repositories
	objectiveRepository := repository.NewObjectiveDatabaseAdapter(db)
	recordRepository := repository.NewGenerationRecordDatabaseAdapter(db)

	// Initialize Redis client
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize services
	objectiveStore, err := service.NewObjectiveStore(objectiveRepository)
	if err != nil {
		appLogger.Fatal("Failed to create objective store", zap.Error(err))
	}
	progressTracker := service.NewProgressTracker(cacheAdapter, cfg.Cache.ProgressTTL)
	architectService := service.NewArchitectService(
		objectiveGenerator,
		objectiveStore,
		recordRepository,
		progressTracker,
		cacheAdapter,
		cfg.Cache.ObjectivesTTL,
		llmClient.ModelVersion(),
	)
	assessorService := service.NewAssessorService(quizGenerator, objectiveStore, recordRepository, progressTracker)
	healthService := service.NewHealthService(llmClient, cacheAdapter)
	statsService := service.NewStatsService(recordRepository)

	// Initialize handlers
	generationHandler := handler.NewGenerationHandler(architectService, assessorService, progressTracker)
	systemHandler := handler.NewSystemHandler(healthService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestContext())
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	// System routes
	app.Get("/", systemHandler.Root)
	app.Get("/health", systemHandler.Health)

	// API routes
	apiGroup := app.Group("/api/v1")
	apiGroup.Post("/generate/objectives", generationHandler.GenerateObjectives)
	apiGroup.Post("/generate/quiz", generationHandler.GenerateQuiz)
	apiGroup.Get("/generate/progress/:requestId", generationHandler.GetProgress)
	apiGroup.Get("/objectives", generationHandler.ListObjectives)
	apiGroup.Get("/stats/usage", statsHandler.GetUsageStats)
	apiGroup.Get("/stats/performance", statsHandler.GetPerformanceStats)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/arkan-dev/eduverse-api/internal/config"
	"github.com/arkan-dev/eduverse-api/internal/database"
	"github.com/arkan-dev/eduverse-api/internal/handler"
	"github.com/arkan-dev/eduverse-api/internal/middleware"
	"github.com/arkan-dev/eduverse-api/internal/models"
	"github.com/arkan-dev/eduverse-api/internal/repository"
	"github.com/arkan-dev/eduverse-api/internal/router"
	"github.com/arkan-dev/eduverse-api/internal/service"
	"github.com/arkan-dev/eduverse-api/pkg/ai"
	"github.com/arkan-dev/eduverse-api/pkg/mediastore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := connectDatabase(cfg, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Learner{}, &models.ProgressSnapshot{}, &models.ActivityEntry{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	var uploader mediastore.Uploader
	if cfg.CloudinaryCloud != "" {
		store, err := mediastore.NewCloudinary(mediastore.Config{
			CloudName: cfg.CloudinaryCloud,
			APIKey:    cfg.CloudinaryKey,
			APISecret: cfg.CloudinarySecret,
			Folder:    cfg.CloudinaryFolder,
		}, logger)
		if err != nil {
			log.Fatalf("failed to create cloudinary client: %v", err)
		}
		uploader = store
	} else {
		logger.Warn().Msg("cloudinary not configured, lesson media uploads disabled")
	}

	var assistant ai.Assistant
	if cfg.OpenAIAPIKey != "" {
		assistant, err = ai.NewOpenAIAssistant(ai.OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.AIModel,
			Logger: logger,
		})
		if err != nil {
			log.Fatalf("failed to create assistant: %v", err)
		}
	} else {
		logger.Warn().Msg("openai not configured, study buddy will answer with fallbacks")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	learnerRepo := repository.NewLearnerRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient, cfg.SessionTTL)
	chatRepo := repository.NewChatRepository(redisClient, cfg.ChatHistoryTTL)

	activityService := service.NewActivityService(activityRepo, logger)
	progressService := service.NewProgressService(progressRepo, activityService, uploader, logger)
	analyticsService := service.NewAnalyticsService(progressService, activityService, redisClient, cfg.AnalyticsCacheTTL, logger)
	authService := service.NewAuthService(learnerRepo, sessionRepo, cfg.JWTSecret, cfg.SessionTTL, logger)
	quizService := service.NewQuizService(logger)
	chatService := service.NewChatService(chatRepo, assistant, cfg.AITimeout, logger)

	authHandler := handler.NewAuthHandler(authService, progressService, chatService, validate, logger)
	courseHandler := handler.NewCourseHandler(progressService, quizService, authService, analyticsService, validate, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, authService, logger)
	activityHandler := handler.NewActivityHandler(activityService, logger)
	libraryHandler := handler.NewLibraryHandler(authService, logger)
	chatHandler := handler.NewChatHandler(chatService, validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:      authHandler,
		CourseHandler:    courseHandler,
		AnalyticsHandler: analyticsHandler,
		ActivityHandler:  activityHandler,
		LibraryHandler:   libraryHandler,
		ChatHandler:      chatHandler,
		SessionResolver:  middleware.OptionalSession(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

// connectDatabase prefers postgres and falls back to a local SQLite file so
// the demo runs without external infrastructure.
func connectDatabase(cfg config.Config, logger zerolog.Logger) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return database.ConnectPostgres(cfg.DatabaseURL)
	}

	logger.Warn().Str("path", cfg.SQLitePath).Msg("no database url configured, using local sqlite")

	return database.ConnectSQLite(cfg.SQLitePath)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}

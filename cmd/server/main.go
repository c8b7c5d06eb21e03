package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OsherKoren/trip-assistant/internal/agent"
	"github.com/OsherKoren/trip-assistant/internal/api/handlers"
	"github.com/OsherKoren/trip-assistant/internal/config"
	"github.com/OsherKoren/trip-assistant/internal/database"
	"github.com/OsherKoren/trip-assistant/internal/health"
	"github.com/OsherKoren/trip-assistant/internal/llm"
	"github.com/OsherKoren/trip-assistant/internal/middleware"
	"github.com/OsherKoren/trip-assistant/internal/notify"
	"github.com/OsherKoren/trip-assistant/internal/repository"
	"github.com/OsherKoren/trip-assistant/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting trip assistant server...")

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if err := cfg.ValidateLLM(); err != nil {
		logger.WithError(err).Fatal("LLM configuration validation failed")
	}

	// Documents must load completely before any traffic is accepted
	store, err := agent.LoadDocuments(cfg.Documents.Dir)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load trip documents")
	}
	logger.WithField("documents", store.Len()).Info("Trip documents loaded")

	llmClient := llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model, logger)
	pipeline := agent.NewPipeline(llmClient, store, logger)

	var repoManager *repository.RepositoryManager
	var cache *database.Cache
	var checker *health.HealthChecker

	if cfg.HasDatabase() {
		dbConfig := &database.Config{
			DatabaseURL: cfg.Database.URL,
			RedisURL:    cfg.Redis.URL,
			LogLevel:    os.Getenv("LOG_LEVEL"),
		}

		dbManager, err := database.NewManager(dbConfig, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to initialize database manager")
		}
		defer dbManager.Close()

		if err := dbManager.Migrate(); err != nil {
			logger.WithError(err).Fatal("Database migration failed")
		}

		repoManager = repository.NewRepositoryManager(dbManager.DB)
		checker = health.NewHealthChecker(dbManager, repoManager.SystemHealth, logger, cfg.LLM.BaseURL)

		if dbManager.Redis != nil {
			cache = database.NewCache(dbManager.Redis, logger)
		}
	} else {
		logger.Warn("No database configured, running without persistence and cache")
	}

	var emailer *notify.Emailer
	if cfg.Feedback.Email != "" && cfg.Feedback.SMTPHost != "" {
		emailer = notify.NewEmailer(
			cfg.Feedback.SMTPHost,
			cfg.Feedback.SMTPPort,
			cfg.Feedback.SMTPUser,
			cfg.Feedback.SMTPPass,
			cfg.Feedback.Email,
			logger,
		)
	}

	messageHandler := handlers.NewMessageHandler(pipeline, repoManager, cache, logger)
	feedbackHandler := handlers.NewFeedbackHandler(repoManager, emailer, logger)
	healthHandler := handlers.NewHealthHandler(checker)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Session-ID", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	rateLimiter := middleware.NewRateLimiter(30)

	router.GET("/health", healthHandler.HandleHealth)

	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter.RateLimit())
	{
		v1.POST("/messages", messageHandler.HandleMessage)
		v1.POST("/feedback", feedbackHandler.HandleFeedback)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Forced server shutdown")
	}

	logger.Info("Server stopped")
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mica-edu/assessment-backend/internal/cache"
	"github.com/mica-edu/assessment-backend/internal/config"
	"github.com/mica-edu/assessment-backend/internal/events"
	"github.com/mica-edu/assessment-backend/internal/handlers"
	"github.com/mica-edu/assessment-backend/internal/repositories/postgres"
	"github.com/mica-edu/assessment-backend/internal/services"
	"github.com/mica-edu/assessment-backend/internal/utils"
	"github.com/mica-edu/assessment-backend/internal/validator"
	"github.com/mica-edu/assessment-backend/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	var logger utils.Logger
	if cfg.IsProduction() {
		logger = utils.NewDefaultLogger()
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger = utils.NewDevelopmentLogger()
	}
	slogger := utils.ToSlogLogger(logger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	repo := postgres.NewRepository(db)
	logger.Info("Connected to database")

	// Redis is optional: without it the count cache degrades to direct queries
	cacheService := cache.NewNoopCache()
	if cfg.RedisURL != "" {
		redisClient, err := pkg.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, continuing without cache", "error", err)
		} else {
			cacheService = cache.NewRedisCache(redisClient, slogger)
			defer redisClient.Close()
			logger.Info("Connected to redis")
		}
	}

	// Kafka is optional: without brokers events stay in-process
	var publisher events.EventPublisher = events.NewMockEventPublisher(slogger)
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := events.NewKafkaEventPublisher(events.PublisherConfig{
			KafkaBrokers: cfg.KafkaBrokers,
			TopicName:    cfg.KafkaTopic,
			Logger:       slogger,
		})
		if err != nil {
			logger.Error("Failed to create Kafka publisher", "error", err)
			os.Exit(1)
		}
		publisher = kafkaPublisher
		logger.Info("Connected to kafka", "brokers", cfg.KafkaBrokers)
	}

	serviceManager := services.NewServiceManager(repo, slogger, validator.New(), cacheService, publisher)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(handlers.CORSMiddleware())

	handlerManager := handlers.NewHandlerManager(serviceManager, repo, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server running", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}

	if err := publisher.Close(); err != nil {
		logger.Warn("Failed to close event publisher", "error", err)
	}
	if err := repo.Close(); err != nil {
		logger.Warn("Failed to close database connection", "error", err)
	}

	logger.Info("Server stopped")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gin-gonic/gin"

	"github.com/elmcrest/compass-service/internal/cache"
	"github.com/elmcrest/compass-service/internal/config"
	"github.com/elmcrest/compass-service/internal/events"
	"github.com/elmcrest/compass-service/internal/handlers"
	"github.com/elmcrest/compass-service/internal/repositories/memory"
	"github.com/elmcrest/compass-service/internal/repositories/sheets"
	"github.com/elmcrest/compass-service/internal/services"
	"github.com/elmcrest/compass-service/internal/utils"
	"github.com/elmcrest/compass-service/internal/validator"
	"github.com/elmcrest/compass-service/pkg"
)

const pruneInterval = time.Hour

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.NewDefaultLogger().LogError(err, "Failed to load configuration")
		os.Exit(1)
	}

	var logger utils.Logger
	if cfg.IsDevelopment() {
		logger = utils.NewDevelopmentLogger()
	} else {
		logger = utils.NewDefaultLogger()
		gin.SetMode(gin.ReleaseMode)
	}
	slogLogger := utils.ToSlogLogger(logger)

	// Redis is optional; without it the dashboard just refetches per request.
	cacheService := cache.NewNoopCache()
	if cfg.RedisURL != "" {
		redisClient, err := pkg.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, dashboard caching disabled", "error", err)
		} else {
			defer redisClient.Close()
			cacheService = cache.NewRedisCache(redisClient, slogLogger)
		}
	}

	publisher, err := cfg.Events.CreateEventPublisher(slogLogger)
	if err != nil {
		logger.LogError(err, "Failed to create event publisher")
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.LogError(err, "Failed to close event publisher")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The in-process publisher gets a logging subscriber so every lifecycle
	// event shows up in the service log.
	if channelPublisher, ok := publisher.(*events.ChannelEventPublisher); ok {
		messages, err := channelPublisher.Subscribe(ctx)
		if err != nil {
			logger.LogError(err, "Failed to subscribe to event topic")
			os.Exit(1)
		}
		go logEvents(messages, logger)
	}

	sessionRepo := memory.NewSessionRepository()
	responseRepo := sheets.NewResponseRepository(sheets.Config{
		SubmitURL:    cfg.SheetsSubmitURL,
		ResponsesURL: cfg.SheetsResponseURL,
		Logger:       logger,
	})

	serviceManager := services.NewServiceManager(services.ManagerConfig{
		Sessions:          sessionRepo,
		Responses:         responseRepo,
		Cache:             cacheService,
		Publisher:         publisher,
		Logger:            slogLogger,
		Validator:         validator.New(),
		SessionTTL:        cfg.SessionTTL,
		DashboardCacheTTL: cfg.DashboardCacheTTL,
	})

	go pruneLoop(ctx, serviceManager.Session(), logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(utils.ContextLogger(logger))

	handlerManager := handlers.NewHandlerManager(serviceManager, logger)
	handlerManager.SetupRoutes(router)

	logger.Info("Starting compass service", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.LogError(err, "Server stopped")
		os.Exit(1)
	}
}

// logEvents consumes the submission topic and records each event. Messages
// must be acked or the subscriber stops receiving.
func logEvents(messages <-chan *message.Message, logger utils.Logger) {
	for msg := range messages {
		logger.Info("Session event",
			"event_type", msg.Metadata.Get("event_type"),
			"source", msg.Metadata.Get("source"),
			"message_id", msg.UUID,
		)
		msg.Ack()
	}
}

// pruneLoop drops sessions past their TTL so abandoned surveys do not
// accumulate.
func pruneLoop(ctx context.Context, sessions services.SessionService, logger utils.Logger) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pruned, err := sessions.PruneExpired(ctx)
			if err != nil {
				logger.LogError(err, "Session pruning failed")
				continue
			}
			if pruned > 0 {
				logger.Info("Pruned expired sessions", "count", pruned)
			}
		}
	}
}

package routes

import (
	"context"
	"freight-tms/internal/config"
	"freight-tms/internal/delivery/http/handler"
	domainLoad "freight-tms/internal/domain/load"
	domainNotification "freight-tms/internal/domain/notification"
	"freight-tms/internal/domain/storage"
	"freight-tms/internal/infrastructure/database/postgres"
	redisStore "freight-tms/internal/infrastructure/redis"
	"freight-tms/internal/logger"
	"freight-tms/internal/middleware"
	"freight-tms/internal/usecase/access"
	"freight-tms/internal/usecase/account"
	"freight-tms/internal/usecase/bol"
	"freight-tms/internal/usecase/carrier"
	"freight-tms/internal/usecase/client"
	"freight-tms/internal/usecase/dashboard"
	"freight-tms/internal/usecase/load"
	"freight-tms/internal/usecase/location"
	"freight-tms/internal/usecase/notification"
	"freight-tms/internal/usecase/profile"
	"freight-tms/internal/usecase/task"
	"freight-tms/internal/usecase/upload"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	tokenCleanupInterval = time.Hour
	healthTimeout        = 2 * time.Second
)

// Dependencies are the connections opened by main and shared by every service.
type Dependencies struct {
	DB          *postgres.DB
	Redis       *redis.Client
	Blobs       storage.BlobStore
	Broadcaster domainNotification.Broadcaster
}

// SetupRoutes wires repositories, services and handlers. Background jobs
// started here stop when ctx is cancelled.
func SetupRoutes(ctx context.Context, cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RateLimitMiddleware(
		middleware.NewRateLimiter(ctx, cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst),
	))

	router.GET("/health", func(c *gin.Context) {
		hctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := deps.DB.Health(hctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}
		if err := deps.Redis.Ping(hctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Redis connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	accountRepo := postgres.NewAccountRepository(deps.DB)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(deps.DB)
	profileRepo := postgres.NewProfileRepository(deps.DB)
	loadRepo := postgres.NewLoadRepository(deps.DB)
	taskRepo := postgres.NewTaskRepository(deps.DB)
	notificationRepo := postgres.NewNotificationRepository(deps.DB)
	clientRepo := postgres.NewClientRepository(deps.DB)
	locationRepo := postgres.NewLocationRepository(deps.DB)
	carrierRepo := postgres.NewCarrierRepository(deps.DB)
	bolRepo := postgres.NewBOLRepository(deps.DB)

	resolver := access.NewResolver(profileRepo)

	accountService := account.NewService(accountRepo, refreshTokenRepo, cfg)
	go accountService.StartTokenCleanupJob(ctx, tokenCleanupInterval)

	notificationService := notification.NewService(notificationRepo, resolver, deps.Broadcaster)
	uploadService := upload.NewService(
		redisStore.NewTicketStore(deps.Redis),
		deps.Blobs,
		cfg.Server.PublicBaseURL,
		cfg.Storage.UploadURLTTL,
		cfg.Storage.MaxUploadMB<<20,
	)

	accountHandler := handler.NewAccountHandler(accountService)
	profileHandler := handler.NewProfileHandler(profile.NewService(profileRepo, accountRepo, resolver, deps.Blobs, cfg.Server.PublicBaseURL))
	loadHandler := handler.NewLoadHandler(load.NewService(loadRepo, newSequencer(cfg, deps, loadRepo), resolver))
	taskHandler := handler.NewTaskHandler(task.NewService(taskRepo, profileRepo, resolver, notificationService))
	notificationHandler := handler.NewNotificationHandler(notificationService)
	dashboardHandler := handler.NewDashboardHandler(dashboard.NewService(loadRepo, taskRepo, profileRepo))
	clientHandler := handler.NewClientHandler(client.NewService(clientRepo, deps.Blobs, resolver))
	locationHandler := handler.NewLocationHandler(location.NewService(locationRepo, resolver))
	carrierHandler := handler.NewCarrierHandler(carrier.NewService(carrierRepo, deps.Blobs, resolver))
	bolHandler := handler.NewBOLHandler(bol.NewService(bolRepo, resolver))
	uploadHandler := handler.NewUploadHandler(uploadService)

	v1 := router.Group("/api/v1")
	{
		// Upload bodies are capped by the upload service, not the JSON limit.
		uploadHandler.RegisterPublicRoutes(v1)

		public := v1.Group("")
		public.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
		public.Use(middleware.AuthRateLimitMiddleware(deps.Redis, cfg.RateLimit.AuthPerMinute))
		{
			accountHandler.RegisterRoutes(public)
		}

		protected := v1.Group("")
		protected.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			accountHandler.RegisterProtectedRoutes(protected)
			profileHandler.RegisterRoutes(protected)
			loadHandler.RegisterRoutes(protected)
			taskHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
			clientHandler.RegisterRoutes(protected)
			locationHandler.RegisterRoutes(protected)
			carrierHandler.RegisterRoutes(protected)
			bolHandler.RegisterRoutes(protected)
			uploadHandler.RegisterRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}

func newSequencer(cfg *config.Config, deps *Dependencies, loadRepo domainLoad.Repository) domainLoad.Sequencer {
	if cfg.Loads.Sequencer == "redis" {
		logger.Info("Load IDs issued by Redis counter", zap.String("sequencer", "redis"))
		return redisStore.NewSequencer(deps.Redis, loadRepo)
	}

	logger.Warn("Load IDs derived from row count; concurrent creates may collide",
		zap.String("sequencer", "count"),
	)
	return postgres.NewCountSequencer(loadRepo)
}

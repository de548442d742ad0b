package main

import (
	"context"
	"errors"
	"freight-tms/internal/config"
	domainNotification "freight-tms/internal/domain/notification"
	"freight-tms/internal/infrastructure/database/postgres"
	mqttBroadcast "freight-tms/internal/infrastructure/mqtt"
	redisStore "freight-tms/internal/infrastructure/redis"
	"freight-tms/internal/infrastructure/storage"
	"freight-tms/internal/logger"
	"freight-tms/internal/routes"
	"freight-tms/pkg/mqtt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env, cfg.Server.LogLevel); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("environment", env),
	)

	db, err := postgres.NewDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	rdb, err := redisStore.New(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}()

	blobs, err := storage.NewLocalStore(cfg.Storage.Root)
	if err != nil {
		logger.Fatal("Failed to prepare file storage", zap.Error(err))
	}

	broadcaster, disconnect := newBroadcaster(cfg)
	defer disconnect()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := routes.SetupRoutes(ctx, cfg, &routes.Dependencies{
		DB:          db,
		Redis:       rdb,
		Blobs:       blobs,
		Broadcaster: broadcaster,
	})

	host := cfg.Server.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("Server exited properly")
}

// newBroadcaster connects to the MQTT broker when one is configured. A failed
// connection degrades to stored-only notifications.
func newBroadcaster(cfg *config.Config) (domainNotification.Broadcaster, func()) {
	if cfg.MQTT.Broker == "" {
		logger.Info("MQTT broker not configured, live notifications disabled")
		return mqttBroadcast.NoopBroadcaster{}, func() {}
	}

	client := mqtt.NewClient(mqtt.DefaultConfig(cfg.MQTT.Broker, cfg.MQTT.ClientID, cfg.MQTT.Username, cfg.MQTT.Password))
	if err := client.Connect(); err != nil {
		logger.Error("Failed to connect to MQTT broker, live notifications disabled",
			zap.String("broker", cfg.MQTT.Broker),
			zap.Error(err),
		)
		return mqttBroadcast.NoopBroadcaster{}, func() {}
	}

	return mqttBroadcast.NewBroadcaster(client, cfg.MQTT.NotificationTopic), client.Disconnect
}

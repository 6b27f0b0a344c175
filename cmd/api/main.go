// @title AutoWorld API
// @version 1.0
// @description Backend of the AutoWorld interactive car site: quiz, car builder, gallery, sounds, video player and newsletter.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey SessionToken
// @in header
// @name Authorization
// @description Type 'Bearer <token from POST /api/sessions>' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "autoworld/cmd/api/docs"
	"autoworld/internal/adapter"
	"autoworld/internal/cache"
	"autoworld/internal/config"
	"autoworld/internal/database"
	"autoworld/internal/domain"
	"autoworld/internal/logger"
	"autoworld/internal/repository"
	"autoworld/internal/scheduler"
	"autoworld/internal/server"

	"go.uber.org/zap"
)

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

	ctx := context.Background()
	sched := scheduler.New()
	defer sched.Stop()

	// Session state and rendered sounds live in Redis when configured, in process memory otherwise.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		appLogger.Info("Successfully connected to Redis")
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
	} else {
		memoryCache := adapter.NewMemoryCacheAdapter()
		defer memoryCache.Close()
		appLogger.Warn("Redis address not configured, using in-memory cache")
		cacheAdapter = memoryCache
	}

	// Newsletter subscribers go to Oracle when configured.
	var subscriberRepo domain.SubscriberRepository
	var txManager domain.TransactionManager
	if cfg.DatabaseEnabled() {
		db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		subscriberRepo = repository.NewSQLXSubscriberRepository(db)
		txManager = repository.NewTransactionManagerAdapter(db)
	} else {
		appLogger.Warn("Database not configured, newsletter subscribers are kept in memory")
		subscriberRepo = repository.NewMemorySubscriberRepository()
		txManager = repository.NewLocalTransactionManager()
	}

	svcs, err := server.NewServices(cfg, cacheAdapter, subscriberRepo, txManager, sched)
	if err != nil {
		appLogger.Fatal("Failed to initialize services", zap.Error(err))
	}
	appLogger.Info("Services initialized")

	sched.Every("video:sweep", time.Minute, func() bool {
		svcs.Video.SweepIdle()
		return true
	})

	app := server.NewApp(cfg.Server, svcs, cacheAdapter)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

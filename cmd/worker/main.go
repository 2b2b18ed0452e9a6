package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/route-weather-service/internal/config"
	"github.com/route-weather-service/internal/domain/repository"
	"github.com/route-weather-service/internal/infrastructure/metno"
	"github.com/route-weather-service/internal/infrastructure/ors"
	"github.com/route-weather-service/internal/pkg/logger"
	"github.com/route-weather-service/internal/repository/cache"
	"github.com/route-weather-service/internal/repository/postgres"
	redisRepo "github.com/route-weather-service/internal/repository/redis"
	"github.com/route-weather-service/internal/usecase"
	"github.com/route-weather-service/internal/worker"
	"github.com/route-weather-service/internal/worker/retention"
	"github.com/route-weather-service/internal/worker/routeplan"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Route Plan Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Duration("shutdown_timeout", cfg.Worker.ShutdownTimeout),
		zap.Duration("history_retention", cfg.History.Retention))

	defaultLocation, err := time.LoadLocation(cfg.Planner.DefaultTimezone)
	if err != nil {
		log.Fatal("Invalid default timezone",
			zap.String("timezone", cfg.Planner.DefaultTimezone), zap.Error(err))
	}

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Connect to PostgreSQL (история), необязательно
	var planRepo repository.PlanRepository
	if cfg.Database.Enabled {
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := db.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
		cancel()

		planRepo = postgres.NewPlanRepository(db)
	}

	// 5. Initialize repositories and clients
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	orsClient := ors.NewClient(&cfg.ORS, log)
	metnoClient := metno.NewClient(&cfg.MetNo, log)

	// 6. Initialize use cases
	routeWeatherUC := usecase.NewRouteWeatherUseCase(
		orsClient,
		orsClient,
		metnoClient,
		cacheRepo,
		planRepo,
		usecase.RouteWeatherConfig{
			MaxPoints:       cfg.Planner.MaxPoints,
			DefaultLocation: defaultLocation,
			ForecastTTL:     cfg.Cache.ForecastTTL,
			GeocodeTTL:      cfg.Cache.GeocodeTTL,
		},
		log,
	)

	// 7. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(cfg.Worker.ShutdownTimeout, log)
	workerManager.Register(routeplan.NewRoutePlanWorker(
		streamRepo,
		routeWeatherUC,
		cfg.Worker.ConsumerGroup,
		log,
	))
	if planRepo != nil {
		workerManager.Register(retention.NewHistoryRetentionJob(
			planRepo,
			cfg.History.Retention,
			cfg.History.CleanupInterval,
			log,
		))
	}

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}

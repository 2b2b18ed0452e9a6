package main

// @title Route Weather Service API
// @version 1.0.0
// @description Маршрут между адресами с прогнозом погоды на момент прибытия в ключевые точки.
// @description
// @description Основные возможности:
// @description - Геокодирование и автодополнение адресов (OpenRouteService)
// @description - Автомобильный маршрут через промежуточные точки
// @description - Прогноз MET Norway на время прибытия, сжатая погодная лента
// @description - История рассчитанных маршрутов

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/route-weather-service/docs"
	"github.com/route-weather-service/internal/config"
	httpDelivery "github.com/route-weather-service/internal/delivery/http"
	"github.com/route-weather-service/internal/delivery/http/handler"
	"github.com/route-weather-service/internal/domain/repository"
	"github.com/route-weather-service/internal/infrastructure/geoip"
	"github.com/route-weather-service/internal/infrastructure/metno"
	"github.com/route-weather-service/internal/infrastructure/ors"
	"github.com/route-weather-service/internal/pkg/logger"
	"github.com/route-weather-service/internal/repository/cache"
	"github.com/route-weather-service/internal/repository/postgres"
	"github.com/route-weather-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Route Weather Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Int("max_points", cfg.Planner.MaxPoints),
		zap.Bool("history", cfg.Database.Enabled),
	)
	if cfg.ORS.APIKey == "" {
		log.Warn("ORS_API_KEY is empty, geocoding and routing requests will be rejected")
	}

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

	// 4. Plan history (PostgreSQL), необязательна
	var (
		planRepo repository.PlanRepository
		db       *postgres.DB
	)
	if cfg.Database.Enabled {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Warn("PostgreSQL unavailable, plan history disabled", zap.Error(err))
		} else {
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
	}

	// 5. External clients
	orsClient := ors.NewClient(&cfg.ORS, log)
	metnoClient := metno.NewClient(&cfg.MetNo, log)

	locator, err := geoip.NewLocator(cfg.GeoIP.DatabasePath, log)
	if err != nil {
		log.Fatal("Failed to open GeoIP database", zap.Error(err))
	}
	defer locator.Close()

	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
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

	autocompleteUC := usecase.NewAutocompleteUseCase(
		orsClient,
		cacheRepo,
		locator,
		cfg.Cache.AutocompleteTTL,
		log,
	)

	historyUC := usecase.NewPlanHistoryUseCase(planRepo, cfg.History.ListLimit, log)

	log.Info("Use cases initialized")

	// 7. Initialize Handlers
	checks := map[string]handler.HealthChecker{"redis": redisClient}
	if db != nil {
		checks["postgres"] = db
	}

	server := httpDelivery.NewServer(cfg, log, httpDelivery.Handlers{
		RouteWeather: handler.NewRouteWeatherHandler(routeWeatherUC, log),
		Autocomplete: handler.NewAutocompleteHandler(autocompleteUC, log),
		Plans:        handler.NewPlanHandler(historyUC, log),
		System:       handler.NewSystemHandler(checks, log),
	})

	// 8. Start server
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

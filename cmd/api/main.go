package main

// @title Pharmafinder Pages API
// @version 1.0.0
// @description Данные страниц клиента рейтинга аптек поверх backend API.
// @description
// @description Основные возможности:
// @description - Аптеки в видимой области карты
// @description - Tier-лист аптек по области
// @description - Страница аптеки с оценками и отзывами, курсорная пагинация
// @description - Создание, изменение и удаление отзывов

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

	_ "github.com/pharmafinder-client/docs"
	"github.com/pharmafinder-client/internal/config"
	httpDelivery "github.com/pharmafinder-client/internal/delivery/http"
	"github.com/pharmafinder-client/internal/delivery/http/handler"
	"github.com/pharmafinder-client/internal/domain/repository"
	"github.com/pharmafinder-client/internal/infrastructure/pharmaapi"
	"github.com/pharmafinder-client/internal/pkg/logger"
	"github.com/pharmafinder-client/internal/repository/cache"
	"github.com/pharmafinder-client/internal/store"
	"github.com/pharmafinder-client/internal/usecase"
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

	log.Info("Starting Pharmafinder page-data server")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("api_base_url", cfg.API.BaseURL),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// 3. Connect to Redis (кеш опционален)
	var (
		redisClient *cache.Redis
		cacheRepo   repository.CacheRepository
	)
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis cache enabled")
	}

	// 4. Initialize API clients
	apiClient := pharmaapi.NewClient(&cfg.API, logger.Component(log, "api"))
	pharmacyClient := pharmaapi.NewPharmacyClient(apiClient)
	ratingClient := pharmaapi.NewRatingClient(apiClient)
	reviewClient := pharmaapi.NewReviewClient(apiClient)

	log.Info("API clients initialized")

	// 5. Initialize Use Cases
	stores := store.New()

	pharmacyUC := usecase.NewPharmacyUseCase(
		pharmacyClient,
		cacheRepo,
		log,
		cfg.Cache.PharmacyListTTL,
	)

	ratingUC := usecase.NewRatingUseCase(
		ratingClient,
		cacheRepo,
		stores,
		log,
		cfg.Cache.TierRatingsTTL,
	)

	reviewUC := usecase.NewReviewUseCase(
		reviewClient,
		cacheRepo,
		stores,
		log,
	)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	mapHandler := handler.NewMapHandler(pharmacyUC, ratingUC, log)
	pharmacyHandler := handler.NewPharmacyHandler(pharmacyUC, ratingUC, reviewUC, log)

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		logger.Component(log, "http"),
		mapHandler,
		pharmacyHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}

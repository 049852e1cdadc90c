package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/pharmafinder-client/internal/config"
	"github.com/pharmafinder-client/internal/infrastructure/pharmaapi"
	"github.com/pharmafinder-client/internal/pkg/logger"
	"github.com/pharmafinder-client/internal/repository/cache"
	"github.com/pharmafinder-client/internal/store"
	"github.com/pharmafinder-client/internal/usecase"
	"github.com/pharmafinder-client/internal/worker"
	"github.com/pharmafinder-client/internal/worker/rating"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// Без кеша прогрев tier-листа бесполезен
	if !cfg.Cache.Enabled {
		fmt.Println("Cache is disabled in configuration. Set CACHE_ENABLED=true to run the refresher.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting tier rating refresher")
	log.Info("Configuration loaded",
		zap.String("api_base_url", cfg.API.BaseURL),
		zap.Duration("refresh_interval", cfg.Worker.RefreshInterval),
		zap.Duration("tier_cache_ttl", cfg.Cache.TierRatingsTTL))

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

	// 4. Initialize clients and use cases
	apiClient := pharmaapi.NewClient(&cfg.API, logger.Component(log, "api"))
	ratingUC := usecase.NewRatingUseCase(
		pharmaapi.NewRatingClient(apiClient),
		cache.NewCacheRepository(redisClient),
		store.New(),
		log,
		cfg.Cache.TierRatingsTTL,
	)

	// 5. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(logger.Component(log, "worker"))
	workerManager.Register(rating.NewTierRefreshWorker(ratingUC, cfg.Worker.RefreshInterval, log))

	// 6. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start workers
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Cancel context to stop workers
	cancel()

	// Stop worker manager
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}

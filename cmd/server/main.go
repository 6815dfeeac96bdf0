package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/label5hub/backend/config"
	httpDelivery "github.com/label5hub/backend/internal/delivery/http"
	"github.com/label5hub/backend/internal/domain"
	"github.com/label5hub/backend/internal/infrastructure/cache"
	"github.com/label5hub/backend/internal/infrastructure/egat"
	"github.com/label5hub/backend/internal/infrastructure/shopee"
	"github.com/label5hub/backend/internal/logger"
	"github.com/label5hub/backend/internal/usecase"
)

func main() {
	// Best effort; the env file is optional outside local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer zlog.Sync()

	zlog.Info("starting label5hub backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cache", cfg.Cache.Type))

	// Infrastructure
	var cacheRepo domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(context.Background(), cfg.Cache.RedisURL)
		if err != nil {
			zlog.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisCache.Close()
		cacheRepo = redisCache
	default:
		cacheRepo = cache.NewMemoryCache()
	}

	shopeeClient := shopee.NewClient(
		cfg.Shopee.BaseURL,
		cfg.Shopee.AppID,
		cfg.Shopee.APIKey,
		cfg.Shopee.PageSize,
		zlog.Named("shopee"),
	)
	egatClient := egat.NewClient(cfg.EGAT.BaseURL, zlog.Named("egat"))

	// Usecase layer
	matcher := usecase.NewMatcher(usecase.NewCategoryTable())
	listingService := usecase.NewListingService(
		cacheRepo,
		shopeeClient,
		matcher,
		zlog.Named("listings"),
		usecase.ListingServiceConfig{
			CacheTTL:         cfg.Cache.TTL,
			MinConfidence:    cfg.Matching.MinConfidence,
			TopN:             cfg.Matching.TopN,
			AffiliateID:      cfg.Affiliate.AffiliateID,
			DefaultSubIDBase: cfg.Affiliate.DefaultSubIDBase,
		},
	)

	zlog.Info("matching configured",
		zap.Float64("min_confidence", cfg.Matching.MinConfidence),
		zap.Int("top_n", cfg.Matching.TopN))

	// HTTP delivery
	handler := httpDelivery.NewHandler(
		listingService,
		egatClient,
		zlog.Named("http"),
		cfg.Affiliate.AffiliateID,
		cfg.Affiliate.DefaultSubIDBase,
	)
	router := httpDelivery.SetupRouter(cfg, handler, zlog.Named("http"))

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}

package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("LABEL5_SERVER_PORT")
		os.Unsetenv("LABEL5_SERVER_ENVIRONMENT")
		os.Unsetenv("LABEL5_SERVER_ADMIN_API_KEY")
		os.Unsetenv("LABEL5_SHOPEE_BASE_URL")
		os.Unsetenv("LABEL5_SHOPEE_PAGE_SIZE")
		os.Unsetenv("LABEL5_EGAT_BASE_URL")
		os.Unsetenv("LABEL5_AFFILIATE_AFFILIATE_ID")
		os.Unsetenv("LABEL5_AFFILIATE_DEFAULT_SUB_ID_BASE")
		os.Unsetenv("LABEL5_CACHE_TYPE")
		os.Unsetenv("LABEL5_CACHE_REDIS_URL")
		os.Unsetenv("LABEL5_CACHE_TTL")
		os.Unsetenv("LABEL5_MATCHING_TOP_N")
		os.Unsetenv("LABEL5_MATCHING_MIN_CONFIDENCE")
		os.Unsetenv("LABEL5_LOG_LEVEL")
		os.Unsetenv("LABEL5_LOG_FORMAT")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required affiliate ID
		os.Setenv("LABEL5_AFFILIATE_AFFILIATE_ID", "aff-test")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Shopee.BaseURL != "https://shopee.co.th" {
			t.Errorf("Shopee.BaseURL = %s, want https://shopee.co.th", cfg.Shopee.BaseURL)
		}
		if cfg.Shopee.PageSize != 20 {
			t.Errorf("Shopee.PageSize = %d, want 20", cfg.Shopee.PageSize)
		}
		if cfg.EGAT.BaseURL != "https://labelno5.egat.co.th" {
			t.Errorf("EGAT.BaseURL = %s, want https://labelno5.egat.co.th", cfg.EGAT.BaseURL)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 6*time.Hour {
			t.Errorf("Cache.TTL = %v, want 6h", cfg.Cache.TTL)
		}
		if cfg.Matching.TopN != 10 {
			t.Errorf("Matching.TopN = %d, want 10", cfg.Matching.TopN)
		}
		if cfg.Matching.MinConfidence != 0.4 {
			t.Errorf("Matching.MinConfidence = %v, want 0.4", cfg.Matching.MinConfidence)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("Log.Level = %s, want info", cfg.Log.Level)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LABEL5_AFFILIATE_AFFILIATE_ID", "aff-prod")
		os.Setenv("LABEL5_SERVER_PORT", "9090")
		os.Setenv("LABEL5_SERVER_ENVIRONMENT", "production")
		os.Setenv("LABEL5_CACHE_TTL", "12h")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Affiliate.AffiliateID != "aff-prod" {
			t.Errorf("Affiliate.AffiliateID = %s, want aff-prod", cfg.Affiliate.AffiliateID)
		}
		if cfg.Cache.TTL != 12*time.Hour {
			t.Errorf("Cache.TTL = %v, want 12h", cfg.Cache.TTL)
		}
	})

	t.Run("fails without affiliate ID", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for missing affiliate ID")
		}
	})

	t.Run("fails for unknown cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LABEL5_AFFILIATE_AFFILIATE_ID", "aff-test")
		os.Setenv("LABEL5_CACHE_TYPE", "memcached")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for unknown cache type")
		}
	})

	t.Run("fails for redis cache without URL", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LABEL5_AFFILIATE_AFFILIATE_ID", "aff-test")
		os.Setenv("LABEL5_CACHE_TYPE", "redis")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for redis without URL")
		}
	})

	t.Run("accepts redis cache with URL", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LABEL5_AFFILIATE_AFFILIATE_ID", "aff-test")
		os.Setenv("LABEL5_CACHE_TYPE", "redis")
		os.Setenv("LABEL5_CACHE_REDIS_URL", "redis://localhost:6379")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}
		if cfg.Cache.Type != "redis" {
			t.Errorf("Cache.Type = %s, want redis", cfg.Cache.Type)
		}
	})

	t.Run("fails for out-of-range min confidence", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LABEL5_AFFILIATE_AFFILIATE_ID", "aff-test")
		os.Setenv("LABEL5_MATCHING_MIN_CONFIDENCE", "1.5")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for min_confidence > 1")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Affiliate: AffiliateConfig{AffiliateID: "aff"},
			Cache:     CacheConfig{Type: "memory"},
			Matching:  MatchingConfig{TopN: 10, MinConfidence: 0.4},
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("zero top_n fails", func(t *testing.T) {
		cfg := valid()
		cfg.Matching.TopN = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for top_n = 0")
		}
	})

	t.Run("negative min confidence fails", func(t *testing.T) {
		cfg := valid()
		cfg.Matching.MinConfidence = -0.1
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for negative min_confidence")
		}
	})
}

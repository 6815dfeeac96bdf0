package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Shopee    ShopeeConfig
	EGAT      EGATConfig
	Affiliate AffiliateConfig
	Cache     CacheConfig
	Matching  MatchingConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AdminAPIKey    string   `mapstructure:"admin_api_key"`
}

// ShopeeConfig holds marketplace search API configuration
type ShopeeConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	AppID    string `mapstructure:"app_id"`
	APIKey   string `mapstructure:"api_key"`
	PageSize int    `mapstructure:"page_size"`
}

// EGATConfig holds the certification open-data endpoint configuration
type EGATConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// AffiliateConfig holds affiliate attribution defaults
type AffiliateConfig struct {
	AffiliateID      string `mapstructure:"affiliate_id"`
	DefaultSubIDBase string `mapstructure:"default_sub_id_base"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// MatchingConfig holds candidate-ranking configuration
type MatchingConfig struct {
	TopN          int     `mapstructure:"top_n"`
	MinConfidence float64 `mapstructure:"min_confidence"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/label5hub/")

	// Environment variable settings
	v.SetEnvPrefix("LABEL5")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"https://*.label5hub.com"})
	v.SetDefault("server.admin_api_key", "")

	// Marketplace defaults
	v.SetDefault("shopee.base_url", "https://shopee.co.th")
	v.SetDefault("shopee.app_id", "")
	v.SetDefault("shopee.api_key", "")
	v.SetDefault("shopee.page_size", 20)

	// Certification dataset defaults
	v.SetDefault("egat.base_url", "https://labelno5.egat.co.th")

	// Affiliate defaults; the affiliate ID itself has no sensible default
	v.SetDefault("affiliate.affiliate_id", "")
	v.SetDefault("affiliate.default_sub_id_base", "label5hub")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", "6h")

	// Matching defaults
	v.SetDefault("matching.top_n", 10)
	v.SetDefault("matching.min_confidence", 0.4)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Affiliate.AffiliateID == "" {
		return fmt.Errorf("affiliate ID is required (set LABEL5_AFFILIATE_AFFILIATE_ID)")
	}

	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	if config.Matching.MinConfidence < 0 || config.Matching.MinConfidence > 1 {
		return fmt.Errorf("matching min_confidence must be in [0,1], got: %v", config.Matching.MinConfidence)
	}

	if config.Matching.TopN < 1 {
		return fmt.Errorf("matching top_n must be at least 1, got: %d", config.Matching.TopN)
	}

	return nil
}

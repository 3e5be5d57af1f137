package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppName string
	AppEnv  string
	AppPort int

	LogLevel string

	// Shopee marketplace endpoints and request shaping.
	ShopeeBaseURL   string
	ShopeeAPIURL    string
	ShopeeUserAgent string
	ShopeeInterval  time.Duration

	// Amazon storefront used by the ASIN resolver.
	AmazonBaseURL   string
	AmazonUserAgent string
	AmazonInterval  time.Duration

	FetchTimeout time.Duration

	// Redis (optional; enabled only when RedisHost is set).
	RedisUser     string
	RedisPassword string
	RedisHost     string
	RedisPort     int
	RedisScheme   string
}

func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "seller-scout")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("SHOPEE_BASE_URL", "https://shopee.co.jp")
	v.SetDefault("SHOPEE_API_URL", "https://shopee.co.jp/api/v4")
	v.SetDefault("SHOPEE_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36")
	v.SetDefault("SHOPEE_INTERVAL_MS", 500)

	v.SetDefault("AMAZON_BASE_URL", "https://www.amazon.co.jp")
	v.SetDefault("AMAZON_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36")
	v.SetDefault("AMAZON_INTERVAL_MS", 500)

	v.SetDefault("FETCH_TIMEOUT_MS", 20000)

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_SCHEME", "redis")

	return v
}

func NewConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppName: v.GetString("APP_NAME"),
		AppEnv:  v.GetString("APP_ENV"),
		AppPort: v.GetInt("APP_PORT"),

		LogLevel: v.GetString("LOG_LEVEL"),

		ShopeeBaseURL:   strings.TrimRight(v.GetString("SHOPEE_BASE_URL"), "/"),
		ShopeeAPIURL:    strings.TrimRight(v.GetString("SHOPEE_API_URL"), "/"),
		ShopeeUserAgent: v.GetString("SHOPEE_USER_AGENT"),
		ShopeeInterval:  time.Duration(v.GetInt("SHOPEE_INTERVAL_MS")) * time.Millisecond,

		AmazonBaseURL:   strings.TrimRight(v.GetString("AMAZON_BASE_URL"), "/"),
		AmazonUserAgent: v.GetString("AMAZON_USER_AGENT"),
		AmazonInterval:  time.Duration(v.GetInt("AMAZON_INTERVAL_MS")) * time.Millisecond,

		FetchTimeout: time.Duration(v.GetInt("FETCH_TIMEOUT_MS")) * time.Millisecond,

		RedisUser:     v.GetString("REDIS_USER"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisHost:     v.GetString("REDIS_HOST"),
		RedisPort:     v.GetInt("REDIS_PORT"),
		RedisScheme:   v.GetString("REDIS_SCHEME"),
	}

	if cfg.AppPort <= 0 || cfg.AppPort > 65535 {
		return Config{}, fmt.Errorf("invalid APP_PORT %d", cfg.AppPort)
	}
	if cfg.RedisPort <= 0 || cfg.RedisPort > 65535 {
		return Config{}, fmt.Errorf("invalid REDIS_PORT %d", cfg.RedisPort)
	}
	if cfg.ShopeeBaseURL == "" || cfg.ShopeeAPIURL == "" {
		return Config{}, fmt.Errorf("missing SHOPEE_BASE_URL/SHOPEE_API_URL")
	}
	if cfg.AmazonBaseURL == "" {
		return Config{}, fmt.Errorf("missing AMAZON_BASE_URL")
	}
	if cfg.FetchTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid FETCH_TIMEOUT_MS")
	}

	return cfg, nil
}

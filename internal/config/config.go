package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	API    APIConfig
	Redis  RedisConfig
	Cache  CacheConfig
	Log    LogConfig
	Worker WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// APIConfig - настройки backend API аптек
type APIConfig struct {
	BaseURL string
	// RequestTimeout 0 означает таймаут транспорта по умолчанию
	RequestTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled         bool
	TierRatingsTTL  time.Duration
	PharmacyListTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled         bool
	RefreshInterval time.Duration
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if !isMissingConfig(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return fromViper(viper.GetViper()), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		API: APIConfig{
			BaseURL:        strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
			RequestTimeout: time.Duration(v.GetInt("API_REQUEST_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled:         v.GetBool("CACHE_ENABLED"),
			TierRatingsTTL:  time.Duration(v.GetInt("TIER_CACHE_TTL")) * time.Second,
			PharmacyListTTL: time.Duration(v.GetInt("PHARMACY_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:         v.GetBool("WORKER_ENABLED"),
			RefreshInterval: time.Duration(v.GetInt("WORKER_REFRESH_INTERVAL")) * time.Second,
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:8000"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Cache.TierRatingsTTL == 0 {
		cfg.Cache.TierRatingsTTL = 5 * time.Minute
	}
	if cfg.Cache.PharmacyListTTL == 0 {
		cfg.Cache.PharmacyListTTL = 1 * time.Hour
	}
	if cfg.Worker.RefreshInterval == 0 {
		cfg.Worker.RefreshInterval = 10 * time.Minute
	}

	return cfg
}

func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

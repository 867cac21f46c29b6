package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

type Config struct {
	Port          string `yaml:"port"`
	DatabaseURL   string `yaml:"database_url"`
	RedisURL      string `yaml:"redis_url"`
	JWTSecret     string `yaml:"jwt_secret"`
	JWTIssuer     string `yaml:"jwt_issuer"`
	JWTTTLMinutes int    `yaml:"jwt_ttl_minutes"`

	// SnapshotTTLSeconds: время жизни снимка коллекции в памяти и в Redis.
	SnapshotTTLSeconds int    `yaml:"snapshot_ttl_seconds"`
	RefreshSpec        string `yaml:"refresh_spec"`
	LogLevel           string `yaml:"log_level"`
}

func (c Config) JWTTTL() time.Duration      { return time.Duration(c.JWTTTLMinutes) * time.Minute }
func (c Config) SnapshotTTL() time.Duration { return time.Duration(c.SnapshotTTLSeconds) * time.Second }

func defaults() Config {
	return Config{
		Port:               "8080",
		JWTSecret:          "dev-secret-change",
		JWTIssuer:          "jobboard-service",
		JWTTTLMinutes:      60,
		SnapshotTTLSeconds: 300,
		RefreshSpec:        "@every 5m",
		LogLevel:           "info",
	}
}

// Load собирает конфигурацию: значения по умолчанию, затем YAML из CONFIG_FILE
// (если задан), затем .env, затем переменные окружения.
func Load() (Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	var err error
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTIssuer = getEnv("JWT_ISSUER", cfg.JWTIssuer)
	cfg.RefreshSpec = getEnv("REFRESH_SPEC", cfg.RefreshSpec)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	if cfg.JWTTTLMinutes, err = getEnvInt("JWT_TTL_MINUTES", cfg.JWTTTLMinutes); err != nil {
		return Config{}, err
	}
	if cfg.SnapshotTTLSeconds, err = getEnvInt("SNAPSHOT_TTL_SECONDS", cfg.SnapshotTTLSeconds); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTTTLMinutes <= 0 {
		return Config{}, errors.New("JWT_TTL_MINUTES must be positive")
	}
	// 0 допустим: снимок живёт до явной инвалидации
	if cfg.SnapshotTTLSeconds < 0 {
		return Config{}, errors.New("SNAPSHOT_TTL_SECONDS must not be negative")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", key, v)
	}
	return n, nil
}

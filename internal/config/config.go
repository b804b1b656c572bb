package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Env         string
	DBDriver    string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration
	BcryptCost  int
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DatabaseDSN: getEnv("DATABASE_DSN", "data/todo.db"),
		JWTSecret:   getEnv("JWT_SECRET_KEY", "dev-secret-change-in-production"),
		JWTExpiry:   24 * time.Hour,
		BcryptCost:  getEnvInt("BCRYPT_COST", 8),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET_KEY must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using fallback", "key", key, "value", v)
		return fallback
	}
	return n
}

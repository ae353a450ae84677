package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/random"
)

// Config holds all runtime settings, resolved from the environment.
type Config struct {
	DatabaseURL string
	Port        int

	JWTSecret             string
	AccessTokenExpiryMin  int
	RefreshTokenExpiryDay int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	DevEmail    string
	DevPassword string
}

// Load reads configuration from the environment. A .env file is honored
// when present but never required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		Port:                  envInt("PORT", 8080),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		AccessTokenExpiryMin:  envInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		RefreshTokenExpiryDay: envInt("REFRESH_TOKEN_EXPIRE_DAYS", 30),
		RedisAddr:             envString("REDIS_ADDR", "localhost:6379"),
		RedisPassword:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:               envInt("REDIS_DB", 0),
		MinioEndpoint:         envString("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:        envString("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey:        envString("MINIO_SECRET_KEY", "minioadmin"),
		MinioUseSSL:           os.Getenv("MINIO_USE_SSL") == "true",
		MinioBucket:           envString("MINIO_BUCKET", "hospital-images"),
		DevEmail:              envString("DEV_EMAIL", "dev@hospsupply.local"),
		DevPassword:           os.Getenv("DEV_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.JWTSecret == "" {
		// Random secret keeps local development working; tokens do not
		// survive a restart.
		cfg.JWTSecret = random.String(32)
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	defaultBaseURL       = "http://localhost:9000"
	defaultPort          = "9000"
	defaultStorageRoot   = "./uploads"
	defaultMaxUploadSize = 100 << 20 // 100 MiB
)

type Config struct {
	DatabaseURL   string
	BaseURL       string // public prefix for resource URLs, no trailing slash
	Port          string
	StorageRoot   string
	MaxUploadSize int64
}

func Load() (*Config, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is empty")
	}

	cfg := &Config{
		DatabaseURL: dsn,
		BaseURL:     getEnv("BASE_URL", defaultBaseURL),
		Port:        getEnv("PORT", defaultPort),
		StorageRoot: getEnv("STORAGE_ROOT", defaultStorageRoot),
	}

	size, err := getEnvInt64("MAX_UPLOAD_SIZE", defaultMaxUploadSize)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_SIZE must be positive, got %d", size)
	}
	cfg.MaxUploadSize = size

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

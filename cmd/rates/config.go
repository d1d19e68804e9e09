package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"privat-rates/internal/logging"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPTimeout time.Duration
	LogLevel    slog.Level
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		HTTPTimeout: 20 * time.Second,
		LogLevel:    slog.LevelInfo,
	}

	if v := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("HTTP_TIMEOUT must be a positive duration, got %q", v)
		}
		cfg.HTTPTimeout = d
	}

	level, err := logging.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

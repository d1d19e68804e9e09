package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"privat-rates/internal"
	"privat-rates/internal/logging"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string

	HTTPPort    string
	HTTPTimeout time.Duration

	ArchiveDays int
	CronSpec    string
	Location    string

	LogLevel slog.Level
}

func LoadConfig() (Config, error) {
	if err := godotenv.Overload(); err != nil {
		slog.Warn("error loading .env file", "err", err)
	}

	cfg := Config{
		HTTPPort:    "8080",
		HTTPTimeout: 20 * time.Second,
		ArchiveDays: internal.MaxDays,
		CronSpec:    "0 12 * * *",
		Location:    "Europe/Kyiv",
		LogLevel:    slog.LevelInfo,
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is empty")
	}

	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.HTTPPort = p
	}

	if v := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("HTTP_TIMEOUT must be a positive duration, got %q", v)
		}
		cfg.HTTPTimeout = d
	}

	if v := strings.TrimSpace(os.Getenv("ARCHIVE_DAYS")); v != "" {
		days, err := internal.ParseDays(v)
		if err != nil {
			return Config{}, fmt.Errorf("ARCHIVE_DAYS: %w", err)
		}
		cfg.ArchiveDays = days
	}

	if v := strings.TrimSpace(os.Getenv("CRON_SPEC")); v != "" {
		cfg.CronSpec = v
	}
	if v := strings.TrimSpace(os.Getenv("LOCATION")); v != "" {
		cfg.Location = v
	}

	level, err := logging.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

func (c Config) String() string {
	return "port=" + c.HTTPPort +
		" archive_days=" + strconv.Itoa(c.ArchiveDays) +
		" cron=" + strconv.Quote(c.CronSpec) +
		" location=" + c.Location
}

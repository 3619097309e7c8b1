package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// MemoryDSN keeps the whole store in process memory; data is gone on exit,
// which is the intended default for this single-user organizer.
const MemoryDSN = "file::memory:?cache=shared"

// Config keeps runtime settings for the organizer service.
type Config struct {
	Addr           string
	DatabaseURL    string
	LogLevel       string
	LogPretty      bool
	SweepInterval  time.Duration
	SummaryTime    string // HH:MM, empty disables the daily summary job
	TelegramToken  string
	TelegramChatID int64
	Seed           bool
	RateLimit      float64
	RateBurst      int
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		Addr:          strings.TrimSpace(os.Getenv("ADDR")),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		LogLevel:      strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		LogPretty:     parseBool(os.Getenv("LOG_PRETTY")),
		SweepInterval: parseMinutes(strings.TrimSpace(os.Getenv("SWEEP_INTERVAL_MINUTES"))),
		SummaryTime:   strings.TrimSpace(os.Getenv("SUMMARY_TIME")),
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		Seed:          parseBool(os.Getenv("SEED")),
		RateLimit:     parseFloat(os.Getenv("RATE_LIMIT_RPS"), 50),
		RateBurst:     parseInt(os.Getenv("RATE_LIMIT_BURST"), 100),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":5000"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = MemoryDSN
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.SweepInterval == 0 {
		cfg.SweepInterval = 5 * time.Minute
	}

	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("TELEGRAM_CHAT_ID must be an integer: %w", err)
		}
		cfg.TelegramChatID = id
	}

	if cfg.TelegramToken != "" && cfg.TelegramChatID == 0 {
		return cfg, fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}

	return cfg, nil
}

func parseMinutes(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return 0
	}
	return time.Duration(minutes) * time.Minute
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}

func parseInt(raw string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func parseFloat(raw string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a .env
// file first when present. Unset or malformed values keep the current value.
func parseEnv(cfg *Config) {
	// missing .env is fine; real env vars still apply
	_ = godotenv.Load()

	cfg.PasswordSalt = fallback(os.Getenv("SECUREBANK_PASSWORD_SALT"), cfg.PasswordSalt)
	cfg.NoteSecret = fallback(os.Getenv("SECUREBANK_NOTE_SECRET"), cfg.NoteSecret)
	cfg.SessionSecret = fallback(os.Getenv("SECUREBANK_SESSION_SECRET"), cfg.SessionSecret)
	cfg.MetricsAddr = fallback(os.Getenv("SECUREBANK_METRICS_ADDR"), cfg.MetricsAddr)
	cfg.LogLevel = fallback(os.Getenv("SECUREBANK_LOG_LEVEL"), cfg.LogLevel)

	if v, err := strconv.Atoi(os.Getenv("SECUREBANK_IDLE_TIMEOUT_SECONDS")); err == nil && v > 0 {
		cfg.IdleTimeout = time.Duration(v) * time.Second
	}
	if v, err := strconv.Atoi(os.Getenv("SECUREBANK_IDLE_CHECK_SECONDS")); err == nil && v > 0 {
		cfg.IdleCheckInterval = time.Duration(v) * time.Second
	}
	if v, err := strconv.Atoi(os.Getenv("SECUREBANK_LOCKOUT_THRESHOLD")); err == nil && v > 0 {
		cfg.LockoutThreshold = v
	}
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

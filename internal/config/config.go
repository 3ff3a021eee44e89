// Package config handles runtime configuration: defaults first, then an
// optional .env file plus environment variables, then command-line flags.
package config

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config holds runtime settings for the security engine and its UI.
//
// Fields:
//   - PasswordSalt: fixed salt appended before hashing passwords. Changing it
//     invalidates every stored digest.
//   - NoteSecret: passphrase the note cipher key is derived from.
//   - SessionSecret: HMAC secret for signing session tokens (HS256).
//   - SeedBalance: balance granted to every new account.
//   - MinTransfer / MaxTransfer: per-transfer bounds.
//   - LockoutThreshold: failed logins before a permanent lock.
//   - IdleTimeout: allowed gap between user actions before forced logout.
//   - IdleCheckInterval: how often the watcher polls for expiry.
//   - MaxUploadBytes: upload size ceiling.
//   - MessageTTL: how long the UI shows a result message.
//   - MetricsAddr: bind address for /metrics; empty disables the listener.
//   - LogLevel: slog level name.
type Config struct {
	PasswordSalt      string
	NoteSecret        string
	SessionSecret     string
	SeedBalance       decimal.Decimal
	MinTransfer       decimal.Decimal
	MaxTransfer       decimal.Decimal
	LockoutThreshold  int
	IdleTimeout       time.Duration
	IdleCheckInterval time.Duration
	MaxUploadBytes    int64
	MessageTTL        time.Duration
	MetricsAddr       string
	LogLevel          string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secrets are insecure placeholders and should be overridden.
func (c *Config) LoadDefaults() {
	c.PasswordSalt = "salt_secret_key"
	c.NoteSecret = "my-super-secret-key-12345"
	c.SessionSecret = "secretKey"
	c.SeedBalance = decimal.NewFromInt(1000)
	c.MinTransfer = decimal.NewFromInt(1)
	c.MaxTransfer = decimal.NewFromInt(100000)
	c.LockoutThreshold = 5
	c.IdleTimeout = 5 * time.Minute
	c.IdleCheckInterval = 10 * time.Second
	c.MaxUploadBytes = 5_000_000
	c.MessageTTL = 5 * time.Second
	c.MetricsAddr = ""
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (optionally via a .env file) and finally from
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

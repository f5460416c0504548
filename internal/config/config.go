// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"GROEI_DB_PATH" envDefault:"./data/groeiboek.db"`
	JWTSecret  string `env:"GROEI_JWT_SECRET,required"`
	ServerHost string `env:"GROEI_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"GROEI_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"GROEI_ENV" envDefault:"development"`
	LogLevel   string `env:"GROEI_LOG_LEVEL" envDefault:"info"`

	// Token lifetimes
	AccessTokenTTL  time.Duration `env:"GROEI_ACCESS_TOKEN_TTL" envDefault:"15m"`
	RefreshTokenTTL time.Duration `env:"GROEI_REFRESH_TOKEN_TTL" envDefault:"720h"`

	// Invitation lifetime
	InvitationTTL time.Duration `env:"GROEI_INVITATION_TTL" envDefault:"168h"`

	// Login protection
	LoginRateLimit    float64       `env:"GROEI_LOGIN_RATE_LIMIT" envDefault:"0.5"`
	LoginBurst        int           `env:"GROEI_LOGIN_BURST" envDefault:"5"`
	MaxFailedAttempts int           `env:"GROEI_MAX_FAILED_ATTEMPTS" envDefault:"5"`
	LockoutDuration   time.Duration `env:"GROEI_LOCKOUT_DURATION" envDefault:"15m"`

	// Seeding configuration
	DoSeed bool `env:"GROEI_DO_SEED" envDefault:"false"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// SlogLevel maps the configured log level string onto a slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MinJWTSecretLength is the minimum required length for the JWT signing
// secret. HMAC-SHA256 wants at least 32 bytes of key material.
const MinJWTSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("GROEI_JWT_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinJWTSecretLength, len(cfg.JWTSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.JWTSecret == weak {
			return nil, fmt.Errorf("GROEI_JWT_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.JWTSecret) {
		slog.Warn("GROEI_JWT_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}

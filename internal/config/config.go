// Package config collects the server's settings from the environment.
//
// A `.env` file in the working directory is loaded first (if present);
// real environment variables take precedence over it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/robalobadob/werdle/internal/game"
)

// Config is the resolved server configuration.
type Config struct {
	Port             string        // PORT
	LogLevel         zerolog.Level // LOG_LEVEL
	WordsFile        string        // WORDS_FILE; empty means the embedded list
	Scoring          game.Scoring  // SCORING: simple | standard
	Seed             uint64        // SEED; 0 seeds from the clock
	DailySalt        string        // DAILY_SALT
	JWTSecret        string        // JWT_SECRET
	SessionTTL       time.Duration // SESSION_TTL
	ClientOrigin     string        // CLIENT_ORIGIN
	AllowFixedSecret bool          // ALLOW_FIXED_SECRET
	SecureCookies    bool          // COOKIE_SECURE
}

// Load reads `.env` (ignored if missing) and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "5175"),
		WordsFile:    os.Getenv("WORDS_FILE"),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return cfg, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = lvl

	mode, ok := game.ParseScoring(os.Getenv("SCORING"))
	if !ok {
		return cfg, fmt.Errorf("config: SCORING: unknown mode %q", os.Getenv("SCORING"))
	}
	cfg.Scoring = mode

	if v := os.Getenv("SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("config: SEED: %w", err)
		}
		cfg.Seed = seed
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return cfg, fmt.Errorf("config: SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return cfg, fmt.Errorf("config: SESSION_TTL must be positive, got %s", ttl)
	}
	cfg.SessionTTL = ttl

	if v := os.Getenv("ALLOW_FIXED_SECRET"); v != "" {
		allow, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("config: ALLOW_FIXED_SECRET: %w", err)
		}
		cfg.AllowFixedSecret = allow
	}

	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("config: COOKIE_SECURE: %w", err)
		}
		cfg.SecureCookies = secure
	}
	return cfg, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

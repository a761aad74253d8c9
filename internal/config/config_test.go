package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/werdle/internal/game"
)

var envKeys = []string{
	"PORT", "LOG_LEVEL", "WORDS_FILE", "SCORING", "SEED", "DAILY_SALT",
	"JWT_SECRET", "SESSION_TTL", "CLIENT_ORIGIN", "ALLOW_FIXED_SECRET", "COOKIE_SECURE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, game.ScoringSimple, cfg.Scoring)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.AllowFixedSecret)
	assert.Empty(t, cfg.WordsFile)
}

func TestOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SCORING", "standard")
	t.Setenv("SEED", "42")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("ALLOW_FIXED_SECRET", "true")
	t.Setenv("WORDS_FILE", "/tmp/words.txt")
	t.Setenv("COOKIE_SECURE", "1")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, game.ScoringStandard, cfg.Scoring)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.AllowFixedSecret)
	assert.Equal(t, "/tmp/words.txt", cfg.WordsFile)
	assert.True(t, cfg.SecureCookies)
}

func TestInvalidValues(t *testing.T) {
	tests := []struct{ key, val string }{
		{"LOG_LEVEL", "loud"},
		{"SCORING", "fuzzy"},
		{"SEED", "-1"},
		{"SESSION_TTL", "soon"},
		{"SESSION_TTL", "-5m"},
		{"ALLOW_FIXED_SECRET", "perhaps"},
		{"COOKIE_SECURE", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "WORD_LENGTH", "MAX_GUESSES", "REDIS_URL", "TOKEN_TTL", "LOG_PRETTY", "DICTIONARY_DB"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, 5, cfg.WordLength)
	assert.Equal(t, 6, cfg.MaxGuesses)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Empty(t, cfg.RedisURL)
	assert.Empty(t, cfg.DictionaryDB)
	assert.False(t, cfg.LogPretty)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("WORD_LENGTH", "7")
	t.Setenv("MAX_GUESSES", "not-a-number")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 7, cfg.WordLength)
	assert.Equal(t, 6, cfg.MaxGuesses)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

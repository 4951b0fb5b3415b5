package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures process level settings read from the environment.
type Config struct {
	Port         string
	LogLevel     string
	LogPretty    bool
	WordLength   int
	MaxGuesses   int
	JWTSecret    string
	TokenTTL     time.Duration
	RedisURL     string // empty: games live in process memory
	SessionTTL   time.Duration
	DictionaryDB string // empty: use the bundled word lists
	DailySalt    string
	ClientOrigin string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogPretty:    getEnv("LOG_PRETTY", "false") == "true",
		WordLength:   getInt("WORD_LENGTH", 5),
		MaxGuesses:   getInt("MAX_GUESSES", 6),
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		TokenTTL:     getDuration("TOKEN_TTL", 24*time.Hour),
		RedisURL:     os.Getenv("REDIS_URL"),
		SessionTTL:   getDuration("SESSION_TTL", 24*time.Hour),
		DictionaryDB: os.Getenv("DICTIONARY_DB"),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return n
	}
	return def
}

func getDuration(k string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(k)); err == nil {
		return d
	}
	return def
}

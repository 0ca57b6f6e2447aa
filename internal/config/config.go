// internal/config/config.go
//
// Runtime configuration for the Hangman server and console game.
//
// Values come from the process environment, optionally seeded from a `.env`
// file in the working directory (development convenience). Unset, empty or
// malformed values fall back to the defaults below.
//
// Environment variables:
//   PORT=5175
//   LOG_LEVEL=info
//   WORDS_FILE=/path/to/words.txt     (empty → embedded list)
//   DEFAULT_LIVES=6
//   JWT_SECRET=dev_secret_change_me
//   TOKEN_TTL_HOURS=24
//   CLIENT_ORIGIN=http://localhost:5173

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
)

// Config is the resolved runtime configuration.
type Config struct {
	Port         string
	LogLevel     zerolog.Level
	WordsFile    string
	DefaultLives int
	TokenSecret  []byte
	TokenTTL     time.Duration
	ClientOrigin string
}

// Load reads `.env` (if present) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	lives := envInt("DEFAULT_LIVES", game.DefaultLives)
	if lives <= 0 {
		log.Warn().Int("lives", lives).Msg("DEFAULT_LIVES must be positive, using default")
		lives = game.DefaultLives
	}
	return Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     lvl,
		WordsFile:    os.Getenv("WORDS_FILE"),
		DefaultLives: lives,
		TokenSecret:  []byte(getEnv("JWT_SECRET", "dev_secret_change_me")),
		TokenTTL:     time.Duration(envInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
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

// envInt parses k as an int, returning def when unset or malformed.
func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("invalid integer, using default")
		return def
	}
	return n
}

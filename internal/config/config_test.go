package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "WORDS_FILE", "DEFAULT_LIVES", "JWT_SECRET", "TOKEN_TTL_HOURS", "CLIENT_ORIGIN"} {
		t.Setenv(k, "")
	}

	c := FromEnv()
	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, zerolog.InfoLevel, c.LogLevel)
	assert.Empty(t, c.WordsFile)
	assert.Equal(t, 6, c.DefaultLives)
	assert.Equal(t, []byte("dev_secret_change_me"), c.TokenSecret)
	assert.Equal(t, 24*time.Hour, c.TokenTTL)
	assert.Equal(t, "http://localhost:5173", c.ClientOrigin)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WORDS_FILE", "/tmp/w.txt")
	t.Setenv("DEFAULT_LIVES", "9")
	t.Setenv("TOKEN_TTL_HOURS", "2")

	c := FromEnv()
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, zerolog.DebugLevel, c.LogLevel)
	assert.Equal(t, "/tmp/w.txt", c.WordsFile)
	assert.Equal(t, 9, c.DefaultLives)
	assert.Equal(t, 2*time.Hour, c.TokenTTL)
}

func TestFromEnv_BadValuesFallBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("DEFAULT_LIVES", "0")
	t.Setenv("TOKEN_TTL_HOURS", "soon")

	c := FromEnv()
	assert.Equal(t, zerolog.InfoLevel, c.LogLevel)
	assert.Equal(t, 6, c.DefaultLives)
	assert.Equal(t, 24*time.Hour, c.TokenTTL)
}

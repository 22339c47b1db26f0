package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.NotEmpty(t, cfg.AllowOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET_KEY", "env-secret")
	t.Setenv("TOKEN_TTL_HOURS", "1")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
}

func TestGetEnvInt_Invalid(t *testing.T) {
	t.Setenv("TOKEN_TTL_HOURS", "not-a-number")

	assert.Equal(t, 24, getEnvInt("TOKEN_TTL_HOURS", 24))
}

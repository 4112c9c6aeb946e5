package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	env := map[string]string{"KEY": "value", "EMPTY": ""}

	assert.Equal(t, "value", GetString(env, "KEY", "fallback"))
	assert.Equal(t, "fallback", GetString(env, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(env, "EMPTY", "fallback"))
}

func TestGetInt(t *testing.T) {
	env := map[string]string{"NUM": "42", "BAD": "forty-two"}

	assert.Equal(t, 42, GetInt(env, "NUM", 7))
	assert.Equal(t, 7, GetInt(env, "MISSING", 7))
	assert.Equal(t, 7, GetInt(env, "BAD", 7))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORTFOLIO_API_URL", "https://api.test.local")
	t.Setenv("PORTFOLIO_TIMEOUT_SECONDS", "5")

	cfg := Load()

	assert.Equal(t, "https://api.test.local", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.NotEmpty(t, cfg.AssetBaseURL)
	assert.NotEmpty(t, cfg.TokenDBPath)
}

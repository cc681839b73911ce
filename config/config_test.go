package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"API_URL", "API_TIMEOUT", "LOG_LEVEL", "STORE_BACKEND", "CART_PERSIST", "STATE_KEY"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, BackendFile, cfg.StoreBackend)
	assert.True(t, cfg.CartPersist)
	assert.Empty(t, cfg.StateKey)
	assert.NotEmpty(t, cfg.StateDir)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("API_URL", "https://ynot.example/api")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("CART_PERSIST", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://ynot.example/api", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.False(t, cfg.CartPersist)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad timeout", "API_TIMEOUT", "soon"},
		{"negative timeout", "API_TIMEOUT", "-1s"},
		{"bad bool", "CART_PERSIST", "maybe"},
		{"unknown backend", "STORE_BACKEND", "sqlite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-api-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 0, cfg.Server.RateLimitPerMinute)

	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.ModelName)
	assert.InDelta(t, 0.7, cfg.LLM.DefaultTemperature, 0.0001)
	assert.Equal(t, 5000, cfg.LLM.DefaultThinkingBudget)
	assert.Equal(t, 20, cfg.LLM.RequestTimeoutSeconds)

	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-api-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEFAULT_TEMPERATURE", "0.4")
	t.Setenv("DEFAULT_THINKING_BUDGET", "2000")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL_SECONDS", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.ModelName)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.InDelta(t, 0.4, cfg.LLM.DefaultTemperature, 0.0001)
	assert.Equal(t, 2000, cfg.LLM.DefaultThinkingBudget)
	assert.Equal(t, 30, cfg.LLM.RequestTimeoutSeconds)
	assert.Equal(t, 120, cfg.Server.RateLimitPerMinute)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing api key",
			env:     map[string]string{"GEMINI_API_KEY": ""},
			wantErr: "GEMINI_API_KEY",
		},
		{
			name: "invalid log level",
			env: map[string]string{
				"GEMINI_API_KEY": "test-api-key",
				"LOG_LEVEL":      "verbose",
			},
			wantErr: "LOG_LEVEL",
		},
		{
			name: "port out of range",
			env: map[string]string{
				"GEMINI_API_KEY": "test-api-key",
				"SERVER_PORT":    "70000",
			},
			wantErr: "SERVER_PORT",
		},
		{
			name: "timeout out of range",
			env: map[string]string{
				"GEMINI_API_KEY":          "test-api-key",
				"REQUEST_TIMEOUT_SECONDS": "900",
			},
			wantErr: "REQUEST_TIMEOUT_SECONDS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

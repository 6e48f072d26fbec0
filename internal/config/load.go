package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that supply them.
// The names follow the original deployment convention (GEMINI_API_KEY etc.)
// rather than a single prefixed namespace.
var envBindings = map[string]string{
	"server.host":                  "SERVER_HOST",
	"server.port":                  "SERVER_PORT",
	"server.log_level":             "LOG_LEVEL",
	"server.rate_limit_per_minute": "RATE_LIMIT_PER_MINUTE",
	"llm.gemini_api_key":           "GEMINI_API_KEY",
	"llm.model_name":               "GEMINI_MODEL",
	"llm.default_temperature":      "DEFAULT_TEMPERATURE",
	"llm.default_thinking_budget":  "DEFAULT_THINKING_BUDGET",
	"llm.request_timeout_seconds":  "REQUEST_TIMEOUT_SECONDS",
	"cache.enabled":                "CACHE_ENABLED",
	"cache.ttl_seconds":            "CACHE_TTL_SECONDS",
}

// Load reads configuration from environment variables and optional config
// files. Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.rate_limit_per_minute", 0)
	v.SetDefault("llm.model_name", "gemini-2.5-flash")
	v.SetDefault("llm.default_temperature", 0.7)
	v.SetDefault("llm.default_thinking_budget", 5000)
	v.SetDefault("llm.request_timeout_seconds", 20)
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.ttl_seconds", 300)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	// Optional config file for local development; absence is not an error.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks the loaded configuration against the struct tags and
// rewrites validator output into actionable messages.
func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			msgs = append(msgs, describeFieldError(fieldErr))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}

	return fmt.Errorf("config validation failed: %w", err)
}

func describeFieldError(fieldErr validator.FieldError) string {
	field := fieldErr.Namespace()
	if env, ok := envForField(field); ok {
		field = fmt.Sprintf("%s (%s)", field, env)
	}
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fieldErr.Tag())
	}
}

// envForField maps a validator namespace like "Config.LLM.GeminiAPIKey" back
// to the environment variable a user would actually set.
func envForField(namespace string) (string, bool) {
	switch namespace {
	case "Config.LLM.GeminiAPIKey":
		return "GEMINI_API_KEY", true
	case "Config.LLM.ModelName":
		return "GEMINI_MODEL", true
	case "Config.Server.Port":
		return "SERVER_PORT", true
	case "Config.Server.LogLevel":
		return "LOG_LEVEL", true
	case "Config.LLM.RequestTimeoutSeconds":
		return "REQUEST_TIMEOUT_SECONDS", true
	default:
		return "", false
	}
}

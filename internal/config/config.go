package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Host     string `mapstructure:"host"      validate:"required"`
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// RateLimitPerMinute caps inbound requests across all endpoints.
	// Zero disables the limiter.
	RateLimitPerMinute int `mapstructure:"rate_limit_per_minute" validate:"gte=0"`
}

// LLMConfig contains all Gemini integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`

	// DefaultTemperature is used when a technique does not pin its own.
	DefaultTemperature float64 `mapstructure:"default_temperature" validate:"gte=0,lte=2"`

	// DefaultThinkingBudget is the token budget granted to the model's
	// internal reasoning when a technique does not pin its own.
	DefaultThinkingBudget int `mapstructure:"default_thinking_budget" validate:"gte=0"`

	// RequestTimeoutSeconds bounds every outbound Gemini call. The call is
	// aborted and reported as a timeout once this many seconds elapse.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"required,gt=0,lte=300"`
}

// CacheConfig controls the optional in-memory response cache.
type CacheConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	TTLSeconds int  `mapstructure:"ttl_seconds" validate:"gte=0"`
}

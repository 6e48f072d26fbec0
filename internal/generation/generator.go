package generation

import (
	"context"
)

// Request describes a single text generation call.
type Request struct {
	// Prompt is the fully assembled prompt text.
	Prompt string

	// Temperature is the sampling temperature. Nil means the provider's
	// configured default.
	Temperature *float64

	// ThinkingBudget is the token budget for the model's internal
	// reasoning. Nil means the provider's configured default; zero
	// disables thinking entirely.
	ThinkingBudget *int

	// MaxTokens limits the generated output when greater than zero.
	MaxTokens int
}

// Result is the outcome of a generation call.
type Result struct {
	// Text is the generated response text.
	Text string

	// Model is the name of the model that produced the text.
	Model string
}

// HealthStatus reports the outcome of a provider connection test.
type HealthStatus struct {
	// OK is true when the provider responded to the test prompt.
	OK bool

	// Model is the configured model name.
	Model string

	// Message is a short human-readable summary.
	Message string

	// Response is the raw text returned by the test prompt, if any.
	Response string
}

// Generator defines the boundary between the application core and the
// external LLM service. Implementations must bound every call: a call that
// exceeds the configured deadline returns ErrTimeout rather than hanging.
type Generator interface {
	// Generate issues one bounded generation call and returns the
	// produced text. Errors wrap the sentinel values in errors.go so
	// callers can classify failures with errors.Is.
	Generate(ctx context.Context, req Request) (*Result, error)

	// HealthCheck issues a minimal connection-test generation and reports
	// whether the provider is reachable and responding.
	HealthCheck(ctx context.Context) HealthStatus

	// ModelName returns the configured model identifier.
	ModelName() string
}

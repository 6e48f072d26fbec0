package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when a generation call fails for any
	// general upstream reason.
	ErrGenerationFailed = errors.New("failed to generate response")

	// ErrInvalidResponse is returned when the LLM response is empty or
	// malformed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to
	// safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrRateLimited is returned when the upstream API reports quota
	// exhaustion (HTTP 429 / RESOURCE_EXHAUSTED).
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrTimeout is returned when the bounded call exceeds its deadline.
	ErrTimeout = errors.New("generation call timed out")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyPrompt is returned when a request carries no prompt text.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)

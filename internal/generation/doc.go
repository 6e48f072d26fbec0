// Package generation defines the interface for bounded text generation.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
//
// The package intentionally contains no provider-specific code; concrete
// implementations live under internal/platform (e.g. the Gemini-backed
// generator) and are injected where needed.
package generation

package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/prompting-api/internal/config"
	"github.com/phrazzld/prompting-api/internal/generation"
	"google.golang.org/genai"
)

// connectionTestPrompt is the fixed prompt used by HealthCheck. The model is
// asked for a known string so reachability and basic generation can both be
// verified from one call.
const connectionTestPrompt = "Respond with exactly: 'Connection test successful'"

// Generator implements generation.Generator using Google's Gemini API.
// Every call is bounded by the configured request timeout.
type Generator struct {
	logger *slog.Logger
	config config.LLMConfig
	client *genai.Client
	model  string
}

// NewGenerator creates a Gemini-backed Generator with the provided
// dependencies. It validates the configuration and establishes the API client.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.RequestTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: request timeout must be positive", generation.ErrInvalidConfig)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger: logger,
		config: cfg,
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// ModelName returns the configured model identifier.
func (g *Generator) ModelName() string {
	return g.model
}

// Generate issues one bounded generation call. The outbound call races a
// deadline of RequestTimeoutSeconds; if the deadline wins, the caller gets
// generation.ErrTimeout and the in-flight call is abandoned via context
// cancellation.
func (g *Generator) Generate(ctx context.Context, req generation.Request) (*generation.Result, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, generation.ErrEmptyPrompt
	}

	timeout := time.Duration(g.config.RequestTimeoutSeconds) * time.Second
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	genConfig := g.buildConfig(req)

	g.logger.DebugContext(ctx, "making Gemini API call",
		"model", g.model,
		"prompt_length", len(req.Prompt),
		"timeout_seconds", g.config.RequestTimeoutSeconds)

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(
		callCtx,
		g.model,
		genai.Text(req.Prompt),
		genConfig,
	)
	elapsed := time.Since(start)

	if err != nil {
		mapped := g.mapCallError(callCtx, err)
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"error", mapped,
			"elapsed", elapsed.String())
		return nil, mapped
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API returned unusable response", "error", err)
		return nil, err
	}

	g.logger.DebugContext(ctx, "Gemini API call successful",
		"response_length", len(text),
		"elapsed", elapsed.String())

	return &generation.Result{Text: text, Model: g.model}, nil
}

// HealthCheck issues the fixed connection-test prompt with sampling and
// thinking disabled. Failures are reported in the status rather than as an
// error so callers can always render a health payload.
func (g *Generator) HealthCheck(ctx context.Context) generation.HealthStatus {
	zeroTemp := 0.0
	zeroBudget := 0

	result, err := g.Generate(ctx, generation.Request{
		Prompt:         connectionTestPrompt,
		Temperature:    &zeroTemp,
		ThinkingBudget: &zeroBudget,
	})
	if err != nil {
		g.logger.WarnContext(ctx, "connection test failed", "error", err)
		return generation.HealthStatus{
			OK:      false,
			Model:   g.model,
			Message: "Connection failed",
		}
	}

	ok := strings.Contains(strings.ToLower(result.Text), "successful")
	message := "Connection successful"
	if !ok {
		message = "Connection failed"
	}

	return generation.HealthStatus{
		OK:       ok,
		Model:    g.model,
		Message:  message,
		Response: result.Text,
	}
}

// buildConfig translates a generation.Request into the genai call config,
// filling provider defaults for unset fields.
func (g *Generator) buildConfig(req generation.Request) *genai.GenerateContentConfig {
	temperature := g.config.DefaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	thinkingBudget := g.config.DefaultThinkingBudget
	if req.ThinkingBudget != nil {
		thinkingBudget = *req.ThinkingBudget
	}

	budget := int32(thinkingBudget)
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(temperature)),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: &budget,
		},
	}

	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	return cfg
}

// mapCallError classifies an error from the genai client into the sentinel
// errors of the generation package.
func (g *Generator) mapCallError(callCtx context.Context, err error) error {
	// Deadline expiry on the bounded call surfaces as a timeout, whether
	// reported through the context or wrapped by the client.
	if errors.Is(callCtx.Err(), context.DeadlineExceeded) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w after %ds", generation.ErrTimeout, g.config.RequestTimeoutSeconds)
	}

	if isRateLimit(err) {
		return fmt.Errorf("%w: %v", generation.ErrRateLimited, err)
	}

	return fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
}

// isRateLimit reports whether err represents upstream quota exhaustion.
func isRateLimit(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == 429 || apiErr.Status == "RESOURCE_EXHAUSTED"
	}
	// The client does not always surface a typed error; fall back to the
	// markers Gemini puts in the message.
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// extractText pulls the generated text out of a response, classifying empty
// and safety-blocked responses.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: generation stopped by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		sb.WriteString(part.Text)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: response contained no text", generation.ErrInvalidResponse)
	}

	return text, nil
}

// Statically verify the interface contract.
var _ generation.Generator = (*Generator)(nil)

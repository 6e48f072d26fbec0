package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/prompting-api/internal/api/shared"
	"github.com/phrazzld/prompting-api/internal/config"
	"github.com/phrazzld/prompting-api/internal/generation"
	"github.com/phrazzld/prompting-api/internal/service/prompting"
)

func testApplication(t *testing.T, rateLimitPerMinute int) *application {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:               "127.0.0.1",
			Port:               5000,
			LogLevel:           "error",
			RateLimitPerMinute: rateLimitPerMinute,
		},
		LLM: config.LLMConfig{
			GeminiAPIKey:          "test-api-key",
			ModelName:             "gemini-2.5-flash",
			DefaultTemperature:    0.7,
			DefaultThinkingBudget: 5000,
			RequestTimeoutSeconds: 20,
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	generator := &generation.MockGenerator{Model: "gemini-2.5-flash"}
	svc, err := prompting.NewService(generator, logger, cfg.LLM)
	require.NoError(t, err)

	return &application{
		config:           cfg,
		logger:           logger,
		generator:        generator,
		promptingService: svc,
	}
}

func parseEnvelope(t *testing.T, rr *httptest.ResponseRecorder) shared.Envelope {
	t.Helper()
	var env shared.Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func TestRouterSystemRoutes(t *testing.T) {
	router := testApplication(t, 0).setupRouter()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"root", http.MethodGet, "/"},
		{"health", http.MethodGet, "/api/health"},
		{"info", http.MethodGet, "/api/info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			env := parseEnvelope(t, rr)
			assert.True(t, env.Success)
		})
	}
}

func TestRouterTechniqueRoutes(t *testing.T) {
	router := testApplication(t, 0).setupRouter()

	tests := []struct {
		path string
		body string
	}{
		{"/api/v1/few-shot/sentiment", `{"text":"great product"}`},
		{"/api/v1/few-shot/math", `{"problem":"What is 15 - 7?"}`},
		{"/api/v1/few-shot/ner", `{"text":"Marie Curie worked in Paris"}`},
		{"/api/v1/few-shot/classification", `{"text":"Where is my refund?"}`},
		{"/api/v1/chain-of-thought/math", `{"problem":"Solve 2x + 3 = 11"}`},
		{"/api/v1/chain-of-thought/logic", `{"problem":"All cats are mammals. Felix is a cat."}`},
		{"/api/v1/chain-of-thought/analysis", `{"problem":"Impact of remote work on cities"}`},
		{"/api/v1/tree-of-thought/explore", `{"problem":"How can we reduce customer churn?"}`},
		{"/api/v1/self-consistency/validate", `{"question":"Capital of France?"}`},
		{"/api/v1/meta-prompting/optimize", `{"task":"summarize articles","current_prompt":"Summarize this text"}`},
		{"/api/v1/meta-prompting/analyze", `{"task":"translate legal documents"}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			env := parseEnvelope(t, rr)
			assert.True(t, env.Success)
			assert.NotNil(t, env.Data)
		})
	}
}

func TestRouterInfoRoutes(t *testing.T) {
	router := testApplication(t, 0).setupRouter()

	for _, path := range []string{
		"/api/v1/few-shot/info",
		"/api/v1/chain-of-thought/info",
		"/api/v1/tree-of-thought/info",
		"/api/v1/self-consistency/info",
		"/api/v1/meta-prompting/info",
	} {
		t.Run(path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			env := parseEnvelope(t, rr)
			assert.True(t, env.Success)
		})
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := testApplication(t, 0).setupRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	env := parseEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestRouterMethodNotAllowed(t *testing.T) {
	router := testApplication(t, 0).setupRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/few-shot/sentiment", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	env := parseEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, "METHOD_NOT_ALLOWED", env.Error.Code)
}

func TestRouterRateLimit(t *testing.T) {
	router := testApplication(t, 1).setupRouter()

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/info", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/info", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	env := parseEnvelope(t, second)
	require.NotNil(t, env.Error)
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", env.Error.Code)
}

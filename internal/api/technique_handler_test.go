package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/prompting-api/internal/api/shared"
	"github.com/phrazzld/prompting-api/internal/generation"
	"github.com/phrazzld/prompting-api/internal/service/prompting"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func parseEnvelope(t *testing.T, rr *httptest.ResponseRecorder) shared.Envelope {
	t.Helper()
	var env shared.Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func sampleResult() *prompting.TechniqueResult {
	return &prompting.TechniqueResult{
		Technique:      prompting.TechniqueFewShot,
		Task:           "sentiment_analysis",
		Input:          "great stuff",
		Output:         "positive",
		ProcessingTime: 0.42,
		Model:          "gemini-2.5-flash",
	}
}

func TestTechniqueEndpointSuccess(t *testing.T) {
	service := &mockService{result: sampleResult()}
	handler := NewFewShotHandler(service)

	rr := postJSON(t, handler.Sentiment, `{"text":"great stuff"}`)

	assert.Equal(t, http.StatusOK, rr.Code)

	env := parseEnvelope(t, rr)
	assert.True(t, env.Success)
	assert.Equal(t, prompting.TechniqueFewShot+" completed successfully", env.Message)
	assert.NotEmpty(t, env.Timestamp)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, prompting.TechniqueFewShot, data["technique"])
	assert.Equal(t, "positive", data["output"])
	assert.Equal(t, "gemini-2.5-flash", data["model"])

	assert.Equal(t, "FewShotSentiment", service.lastMethod)
	assert.Equal(t, []any{"great stuff"}, service.lastArgs)
}

func TestTechniqueEndpointValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing field",
			body:      `{}`,
			wantField: "Text",
		},
		{
			name:      "over maximum length",
			body:      `{"text":"` + strings.Repeat("a", 5001) + `"}`,
			wantField: "Text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockService{result: sampleResult()}
			handler := NewFewShotHandler(service)

			rr := postJSON(t, handler.Sentiment, tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			env := parseEnvelope(t, rr)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, CodeValidationError, env.Error.Code)

			details, ok := env.Error.Details.(map[string]any)
			require.True(t, ok)
			fieldErrors, ok := details["validation_errors"].(map[string]any)
			require.True(t, ok)
			assert.Contains(t, fieldErrors, tt.wantField)

			// The service is never reached on validation failure.
			assert.Empty(t, service.lastMethod)
		})
	}
}

func TestTechniqueEndpointContentType(t *testing.T) {
	service := &mockService{result: sampleResult()}
	handler := NewFewShotHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"text":"x"}`))
	req.Header.Set("Content-Type", "text/plain")
	rr := httptest.NewRecorder()
	handler.Sentiment(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	env := parseEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, CodeInvalidContentType, env.Error.Code)
}

func TestTechniqueEndpointBodyTooLarge(t *testing.T) {
	service := &mockService{result: sampleResult()}
	handler := NewFewShotHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = shared.MaxRequestBytes + 1
	rr := httptest.NewRecorder()
	handler.Sentiment(rr, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	env := parseEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, CodeRequestTooLarge, env.Error.Code)
}

func TestTechniqueEndpointMalformedJSON(t *testing.T) {
	service := &mockService{result: sampleResult()}
	handler := NewFewShotHandler(service)

	rr := postJSON(t, handler.Sentiment, `{"text":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	env := parseEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, CodeBadRequest, env.Error.Code)
}

func TestTechniqueEndpointErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "rate limited",
			serviceErr: generation.ErrRateLimited,
			wantStatus: http.StatusTooManyRequests,
			wantCode:   CodeRateLimitExceeded,
		},
		{
			name:       "timeout",
			serviceErr: generation.ErrTimeout,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   CodeGenerationTimeout,
		},
		{
			name:       "generic failure",
			serviceErr: generation.ErrGenerationFailed,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "SENTIMENT_ANALYSIS_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockService{err: tt.serviceErr}
			handler := NewFewShotHandler(service)

			rr := postJSON(t, handler.Sentiment, `{"text":"great stuff"}`)

			assert.Equal(t, tt.wantStatus, rr.Code)

			env := parseEnvelope(t, rr)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			// Raw error text never leaks to the client.
			assert.NotContains(t, env.Error.Message, tt.serviceErr.Error())
		})
	}
}

func TestTreeOfThoughtHandlerPassesParameters(t *testing.T) {
	service := &mockService{result: &prompting.TechniqueResult{
		Technique: prompting.TechniqueTreeOfThought,
	}}
	handler := NewTreeOfThoughtHandler(service)

	rr := postJSON(t, handler.Explore,
		`{"problem":"how to reduce churn","max_approaches":2}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "TreeOfThoughtExplore", service.lastMethod)
	assert.Equal(t, []any{"how to reduce churn", 2}, service.lastArgs)
}

func TestTreeOfThoughtHandlerBounds(t *testing.T) {
	service := &mockService{result: sampleResult()}
	handler := NewTreeOfThoughtHandler(service)

	rr := postJSON(t, handler.Explore,
		`{"problem":"how to reduce churn","max_approaches":9}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	env := parseEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, CodeValidationError, env.Error.Code)
}

func TestSelfConsistencyHandlerPassesParameters(t *testing.T) {
	service := &mockService{result: &prompting.TechniqueResult{
		Technique: prompting.TechniqueSelfConsistency,
	}}
	handler := NewSelfConsistencyHandler(service)

	rr := postJSON(t, handler.Validate,
		`{"question":"capital of France?","num_samples":4}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "SelfConsistencyValidate", service.lastMethod)
	assert.Equal(t, []any{"capital of France?", 4}, service.lastArgs)
}

func TestSelfConsistencyHandlerBounds(t *testing.T) {
	service := &mockService{result: sampleResult()}
	handler := NewSelfConsistencyHandler(service)

	rr := postJSON(t, handler.Validate,
		`{"question":"capital of France?","num_samples":1}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	env := parseEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, CodeValidationError, env.Error.Code)
}

func TestMetaPromptingHandlerPassesParameters(t *testing.T) {
	service := &mockService{result: &prompting.TechniqueResult{
		Technique: prompting.TechniqueMetaPrompting,
	}}
	handler := NewMetaPromptingHandler(service)

	rr := postJSON(t, handler.Optimize,
		`{"task":"summarize articles","current_prompt":"Summarize this text"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "MetaPromptOptimize", service.lastMethod)
	assert.Equal(t, []any{"summarize articles", "Summarize this text"}, service.lastArgs)
}

func TestInfoEndpoints(t *testing.T) {
	service := &mockService{}

	tests := []struct {
		name          string
		handler       http.HandlerFunc
		wantTechnique string
	}{
		{"few-shot", NewFewShotHandler(service).Info, prompting.TechniqueFewShot},
		{"chain-of-thought", NewChainOfThoughtHandler(service).Info, prompting.TechniqueChainOfThought},
		{"tree-of-thought", NewTreeOfThoughtHandler(service).Info, prompting.TechniqueTreeOfThought},
		{"self-consistency", NewSelfConsistencyHandler(service).Info, prompting.TechniqueSelfConsistency},
		{"meta-prompting", NewMetaPromptingHandler(service).Info, prompting.TechniqueMetaPrompting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/info", nil)
			rr := httptest.NewRecorder()
			tt.handler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)

			env := parseEnvelope(t, rr)
			assert.True(t, env.Success)

			data, ok := env.Data.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, tt.wantTechnique, data["technique"])
			assert.NotEmpty(t, data["endpoints"])
		})
	}
}

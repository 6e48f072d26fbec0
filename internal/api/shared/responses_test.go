package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func TestRespondWithData(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithData(rr, req, http.StatusOK, map[string]string{"k": "v"}, "done")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	env := decodeEnvelope(t, rr)
	assert.True(t, env.Success)
	assert.Equal(t, "done", env.Message)
	assert.Nil(t, env.Error)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "v", data["k"])

	// Timestamp is RFC 3339 in UTC.
	ts, err := time.Parse(time.RFC3339, env.Timestamp)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())
}

func TestRespondWithDataOmitsEmptyMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithData(rr, req, http.StatusOK, "payload", "")

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	_, present := raw["message"]
	assert.False(t, present)
}

func TestRespondWithError(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req = req.WithContext(SetTraceID(req.Context()))

	RespondWithError(rr, req, http.StatusBadRequest, "VALIDATION_ERROR",
		"Request validation failed", map[string]string{"text": "is required"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	assert.Nil(t, env.Data)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, "Request validation failed", env.Error.Message)
	assert.NotEmpty(t, env.Error.TraceID)
	assert.Equal(t, GetTraceID(req.Context()), env.Error.TraceID)

	details, ok := env.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "is required", details["text"])
}

func TestRespondWithErrorAndLog(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req = req.WithContext(SetTraceID(req.Context()))

	underlying := errors.New("upstream exploded with key=verysecretvalue1234")
	RespondWithErrorAndLog(rr, req, http.StatusInternalServerError,
		"GENERATION_FAILED", "An unexpected error occurred", underlying)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	env := decodeEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, "GENERATION_FAILED", env.Error.Code)
	assert.Equal(t, "An unexpected error occurred", env.Error.Message)

	// The raw error never reaches the response body.
	assert.NotContains(t, rr.Body.String(), "verysecretvalue1234")
	assert.NotContains(t, rr.Body.String(), "upstream exploded")
}

func TestTraceIDContext(t *testing.T) {
	ctx := SetTraceID(httptest.NewRequest(http.MethodGet, "/", nil).Context())

	traceID := GetTraceID(ctx)
	assert.NotEmpty(t, traceID)

	// A fresh context carries no trace ID.
	assert.Empty(t, GetTraceID(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

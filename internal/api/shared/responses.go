package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/prompting-api/internal/redact"
)

// ErrorBody is the error payload inside a failed envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

// Envelope is the uniform response wrapper returned by every endpoint:
// success responses carry data (and an optional message), failures carry an
// error body. The timestamp is RFC 3339 UTC.
type Envelope struct {
	Success   bool       `json:"success"`
	Data      any        `json:"data,omitempty"`
	Message   string     `json:"message,omitempty"`
	Error     *ErrorBody `json:"error,omitempty"`
	Timestamp string     `json:"timestamp"`
}

// now returns the envelope timestamp. Swappable for deterministic tests.
var now = func() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// writeJSON encodes v with the given status. Encoding failures can only be
// logged at this point since the header is already written.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithData writes a success envelope with the given status and data.
// An optional message is included when non-empty.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data any, message string) {
	writeJSON(w, status, Envelope{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: now(),
	})
}

// RespondWithError writes a failure envelope with the given status, error
// code, and message. The trace ID from the request context is echoed so the
// client can correlate with server logs.
func RespondWithError(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	code, message string,
	details any,
) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"error_code", code,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	writeJSON(w, status, Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
			TraceID: traceID,
		},
		Timestamp: now(),
	})
}

// RespondWithErrorAndLog writes a failure envelope carrying only the safe
// user message, and logs the underlying error with redaction applied.
//
// Log level strategy:
//   - 5xx: ERROR
//   - 429: WARN (operational concern)
//   - other 4xx: DEBUG
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	code, userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("error_code", code),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		// Only the redacted error ever reaches the logs; the raw error
		// never reaches the client at all.
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case status == http.StatusTooManyRequests:
		logLevel = slog.LevelWarn
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	writeJSON(w, status, Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: userMessage,
			TraceID: traceID,
		},
		Timestamp: now(),
	})
}

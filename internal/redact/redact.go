// Package redact provides utilities for scrubbing sensitive information from
// strings before they are logged. Upstream API errors can embed the request
// URL (which carries the API key as a query parameter), hostnames, and local
// file paths; none of that belongs in log output or error responses.
package redact

import (
	"regexp"
)

// Placeholders substituted for redacted content.
const (
	RedactedKeyPlaceholder  = "[REDACTED_KEY]"
	RedactedPathPlaceholder = "[REDACTED_PATH]"
	RedactedHostPlaceholder = "[REDACTED_HOST]"
)

var (
	// API keys and tokens in key=value or header-ish forms, including the
	// ?key= query parameter the Gemini REST surface uses.
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|key|token|secret|bearer|auth(orization)?)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Google API keys have a recognizable prefix even outside key=value forms.
	googleKeyRegex = regexp.MustCompile(`AIza[A-Za-z0-9_\-]{30,}`)

	// Local file paths (unix and windows).
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)
	winPathRegex  = regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`)

	// Hostnames with optional ports, e.g. generativelanguage.googleapis.com:443.
	hostPortRegex = regexp.MustCompile(
		`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`,
	)
)

// String returns s with all recognized sensitive fragments replaced by
// placeholders.
func String(s string) string {
	if s == "" {
		return s
	}
	s = apiKeyRegex.ReplaceAllString(s, "${1}${3}"+RedactedKeyPlaceholder)
	s = googleKeyRegex.ReplaceAllString(s, RedactedKeyPlaceholder)
	s = unixPathRegex.ReplaceAllString(s, RedactedPathPlaceholder)
	s = winPathRegex.ReplaceAllString(s, RedactedPathPlaceholder)
	s = hostPortRegex.ReplaceAllString(s, RedactedHostPlaceholder)
	return s
}

// Error returns the redacted message of err, or "" for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// Package config defines the application configuration structure and the
// logic for loading it from environment variables and optional config files.
//
// Configuration is organized into logical groups (server, llm, cache) and
// validated at load time so that misconfiguration is reported at startup
// rather than on the first request.
package config

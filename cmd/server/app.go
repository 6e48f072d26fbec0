package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/prompting-api/internal/config"
	"github.com/phrazzld/prompting-api/internal/generation"
	"github.com/phrazzld/prompting-api/internal/platform/gemini"
	"github.com/phrazzld/prompting-api/internal/service/prompting"
)

// application holds the shared dependencies for the HTTP server,
// wired once at startup and passed to the handlers.
type application struct {
	config           *config.Config
	logger           *slog.Logger
	generator        generation.Generator
	promptingService prompting.Service
	cleanupFuncs     []func() error
}

// newApplication creates the application with all dependencies wired.
// Construction order matters: the Gemini client first, then the prompting
// service on top of it, then the optional caching layer.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	generator, err := gemini.NewGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini generator: %w", err)
	}
	app.generator = generator

	svc, err := prompting.NewService(generator, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompting service: %w", err)
	}

	if cfg.Cache.Enabled {
		ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
		svc = prompting.NewCachingService(svc, ttl, logger)
		logger.Info("Response caching enabled", "ttl_seconds", cfg.Cache.TTLSeconds)
	}
	app.promptingService = svc

	return app, nil
}

// addCleanup registers a function to run during graceful shutdown.
func (app *application) addCleanup(fn func() error) {
	app.cleanupFuncs = append(app.cleanupFuncs, fn)
}

// cleanup runs all registered cleanup functions in reverse order.
func (app *application) cleanup() {
	for i := len(app.cleanupFuncs) - 1; i >= 0; i-- {
		if err := app.cleanupFuncs[i](); err != nil {
			app.logger.Error("Cleanup error", "error", err)
		}
	}
}

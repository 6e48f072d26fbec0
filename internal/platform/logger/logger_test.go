package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/prompting-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantLevel slog.Level
	}{
		{name: "debug level", logLevel: "debug", wantLevel: slog.LevelDebug},
		{name: "info level", logLevel: "info", wantLevel: slog.LevelInfo},
		{name: "warn level", logLevel: "warn", wantLevel: slog.LevelWarn},
		{name: "error level", logLevel: "error", wantLevel: slog.LevelError},
		{name: "mixed case", logLevel: "DEBUG", wantLevel: slog.LevelDebug},
		{name: "invalid falls back to info", logLevel: "verbose", wantLevel: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.True(t, log.Enabled(ctx, tt.wantLevel))
			if tt.wantLevel > slog.LevelDebug {
				assert.False(t, log.Enabled(ctx, tt.wantLevel-4))
			}

			// Setup installs the logger as the process default.
			assert.Equal(t, log, slog.Default())
		})
	}
}

func TestLoggerContext(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(os.Stderr, nil))

	t.Run("returns stored logger", func(t *testing.T) {
		stored := slog.New(slog.NewTextHandler(os.Stderr, nil))
		ctx := WithLogger(context.Background(), stored)
		assert.Equal(t, stored, FromContextOrDefault(ctx, fallback))
	})

	t.Run("falls back when absent", func(t *testing.T) {
		assert.Equal(t, fallback, FromContextOrDefault(context.Background(), fallback))
	})
}

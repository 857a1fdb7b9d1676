package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"junebug/internal/app/server/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		debugOn bool
		infoOn  bool
	}{
		{name: "local environment", env: config.EnvLocal, debugOn: true, infoOn: true},
		{name: "dev environment", env: config.EnvDev, debugOn: true, infoOn: true},
		{name: "prod environment", env: config.EnvProd, debugOn: false, infoOn: true},
		{name: "unknown environment falls back to prod", env: "staging", debugOn: false, infoOn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.debugOn, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.infoOn, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestNewWithLevel(t *testing.T) {
	ctx := context.Background()

	warn := NewWithLevel(config.EnvDev, "warn")
	assert.False(t, warn.Enabled(ctx, slog.LevelInfo))
	assert.True(t, warn.Enabled(ctx, slog.LevelWarn))

	// некорректный уровень - как без него
	fallback := NewWithLevel(config.EnvProd, "loud")
	assert.False(t, fallback.Enabled(ctx, slog.LevelDebug))
	assert.True(t, fallback.Enabled(ctx, slog.LevelInfo))
}

func TestSetupPrettySlog(t *testing.T) {
	logger := setupPrettySlog()
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
}

func TestPrettyHandler_Output(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	h := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}.NewPrettyHandler(&buf)
	log := slog.New(h).With("component", "task_service")

	log.Info("task created", "task_id", "42", Err(errors.New("boom")))

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "task created")
	assert.Contains(t, out, `"component": "task_service"`)
	assert.Contains(t, out, `"task_id": "42"`)
	assert.Contains(t, out, `"error": "boom"`)
}

package postgres

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"rolodex/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func newGormLoggerConfig(debug bool, slowThreshold time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Env.Log.SlowQueryThreshold = slowThreshold

	return cfg
}

func TestNewGormSlogLogger_DefaultThreshold(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	l, ok := newGormSlogLogger(base, newGormLoggerConfig(false, 0)).(*gormSlogLogger)
	require.True(t, ok)

	assert.Equal(t, defaultGormSlowThreshold, l.slowThreshold)
	assert.Equal(t, logger.Warn, l.level)
}

func TestNewGormSlogLogger_ConfiguredThreshold(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	l, ok := newGormSlogLogger(base, newGormLoggerConfig(false, 50*time.Millisecond)).(*gormSlogLogger)
	require.True(t, ok)

	assert.Equal(t, 50*time.Millisecond, l.slowThreshold)
	assert.True(t, l.shouldLogSlow(60*time.Millisecond))
	assert.False(t, l.shouldLogSlow(40*time.Millisecond))
}

func TestNewGormSlogLogger_DebugRaisesLevel(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	l, ok := newGormSlogLogger(base, newGormLoggerConfig(true, 0)).(*gormSlogLogger)
	require.True(t, ok)

	assert.Equal(t, logger.Info, l.level)
}

func TestNewGormSlogLogger_NilConfig(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	l, ok := newGormSlogLogger(base, nil).(*gormSlogLogger)
	require.True(t, ok)

	assert.Equal(t, defaultGormSlowThreshold, l.slowThreshold)
	assert.Equal(t, logger.Warn, l.level)
}

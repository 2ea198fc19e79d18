package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"

	"dailyapps/internal/config"
	"dailyapps/internal/outbox"
)

func TestNewLoggerLevel(t *testing.T) {
	logger, err := newLogger("warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestApplyFlagsOverridesOnlyChangedFlags(t *testing.T) {
	cfg := &config.Config{HTTPPort: 8080, LogLevel: "info"}
	require.NoError(t, serveCmd.Flags().Set("port", "9090"))
	t.Cleanup(func() {
		httpPort = 0
		serveCmd.Flags().Lookup("port").Changed = false
	})

	applyFlags(serveCmd, cfg)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestNewPublisherWithoutBrokerLogs(t *testing.T) {
	p := newPublisher(&config.Config{}, zaptest.NewLogger(t))
	assert.IsType(t, &outbox.LogPublisher{}, p)
}

func TestServeIsRegistered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", cmd.Name())
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("log-level"))
}

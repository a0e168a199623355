package initializer

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/amirasaad/responsibility/pkg/chain"
	"github.com/amirasaad/responsibility/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.App {
	return &config.App{
		Env: "test",
		Log: &config.Log{
			Level:      0,
			Format:     "text",
			TimeFormat: "15:04:05",
			Prefix:     "[chain]",
		},
		Chain: &config.Chain{
			Length: 4,
			Input:  "Hello",
		},
	}
}

func TestInitializeDependencies(t *testing.T) {
	deps, err := initializeDependencies(testConfig(), io.Discard)
	require.NoError(t, err)
	require.NotNil(t, deps.Chain)
	assert.NotNil(t, deps.Logger)
	assert.Equal(t, "test", deps.Config.Env)
	assert.Equal(t, 4, deps.Chain.Len())

	req := chain.NewRequest("Hello")
	assert.True(t, deps.Chain.Dispatch(context.Background(), req))
	assert.Len(t, req.Payload, 95)
}

func TestInitializeDependencies_WithGates(t *testing.T) {
	cfg := testConfig()
	cfg.Chain.MaxPayload = 20

	deps, err := initializeDependencies(cfg, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 7, deps.Chain.Len())
}

func TestInitializeDependencies_InvalidLength(t *testing.T) {
	cfg := testConfig()
	cfg.Chain.Length = 0

	deps, err := initializeDependencies(cfg, io.Discard)
	require.ErrorIs(t, err, chain.ErrEmptyChain)
	assert.Nil(t, deps)
}

func TestInitializeDependencies_IncompleteConfig(t *testing.T) {
	_, err := initializeDependencies(&config.App{}, io.Discard)
	assert.Error(t, err)

	_, err = initializeDependencies(nil, io.Discard)
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"text", "hello"},
		{"json", `"msg":"hello"`},
		{"logfmt", "msg=hello"},
		{"unknown", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := testConfig().Log
			cfg.Format = tt.format

			logger := setupLogger(cfg, &buf)
			logger.Info("hello", "handled", true)

			out := buf.String()
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "[chain]")
		})
	}
}

func TestSetupLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig().Log
	cfg.Level = 4

	logger := setupLogger(cfg, &buf)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

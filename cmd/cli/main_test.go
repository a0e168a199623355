package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/amirasaad/responsibility/pkg/chain"
	"github.com/amirasaad/responsibility/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantDemoOutput = "HelloHello\nHelloHello\n\nHelloHello\nHelloHello\n\n\n" +
	"HelloHello\nHelloHello\n\nHelloHello\nHelloHello\n\n\n\n\n"

func newTestDeps(t *testing.T, length int, input string) *config.Deps {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	head, err := chain.NewBuilder(logger).BuildDuplicateChain(length, 0)
	require.NoError(t, err)
	c, err := chain.New(head, logger)
	require.NoError(t, err)
	return &config.Deps{
		Chain:  c,
		Logger: logger,
		Config: &config.App{Chain: &config.Chain{Length: length, Input: input}},
	}
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), newTestDeps(t, 4, "Hello"), &out)
	require.NoError(t, err)

	assert.Equal(t, wantDemoOutput, out.String())
	assert.Equal(t, 16, strings.Count(out.String(), "Hello"))
}

func TestRun_SingleHandler(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), newTestDeps(t, 1, "ab"), &out)
	require.NoError(t, err)
	assert.Equal(t, "abab\n\n", out.String())
}

func TestRootCmd(t *testing.T) {
	t.Setenv("CHAIN_LENGTH", "4")
	t.Setenv("CHAIN_INPUT", "Hello")
	t.Setenv("CHAIN_MAX_PAYLOAD", "0")
	t.Setenv("LOG_FORMAT", "text")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, wantDemoOutput, out.String())
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"extra"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	assert.Error(t, rootCmd.Execute())
}

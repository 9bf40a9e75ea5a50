// Package test provides helpers for command tests: an isolated config
// home, a loaded configuration, and captured logging output.
package test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/hvpaiva/tardis-cli/internal/build"
	"github.com/hvpaiva/tardis-cli/internal/config"
	"github.com/hvpaiva/tardis-cli/internal/logger"
)

// HelperOption defines functional options for Helper.
type HelperOption func(*Options)

type Options struct {
	ConfigContent string // ConfigContent seeds the config document before loading.
}

// WithConfig seeds the config document with the given TOML content
// instead of the embedded template.
func WithConfig(content string) HelperOption {
	return func(opts *Options) {
		opts.ConfigContent = content
	}
}

// Helper provides an isolated environment for a test case.
type Helper struct {
	Context       context.Context
	Config        *config.Config
	LoggingOutput *SyncBuffer
}

// Setup points the config home at a temp directory, neutralizes the
// environment overrides, and loads the configuration.
func Setup(t *testing.T, opts ...HelperOption) Helper {
	t.Helper()

	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, name := range []string{"FORMAT", "TIMEZONE", "DEBUG", "LOG_FORMAT"} {
		t.Setenv(build.EnvPrefix()+"_"+name, "")
	}

	if options.ConfigContent != "" {
		cfgDir := filepath.Join(dir, build.Slug)
		require.NoError(t, os.MkdirAll(cfgDir, 0750))
		require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(options.ConfigContent), 0600))
	}

	cfg, err := config.NewLoader(viper.New()).Load()
	require.NoError(t, err)

	loggingOutput := &SyncBuffer{buf: new(bytes.Buffer)}
	ctx := logger.WithFixedLogger(context.Background(), logger.NewLogger(
		logger.WithDebug(),
		logger.WithQuiet(),
		logger.WithWriter(loggingOutput),
	))

	return Helper{
		Context:       ctx,
		Config:        cfg,
		LoggingOutput: loggingOutput,
	}
}

// SyncBuffer is a goroutine-safe buffer for captured logging output.
type SyncBuffer struct {
	buf *bytes.Buffer
	mu  sync.Mutex
}

func (b *SyncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *SyncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

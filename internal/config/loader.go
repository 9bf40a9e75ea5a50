package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/hvpaiva/tardis-cli/internal/build"
)

//go:embed assets/config_template.toml
var configTemplate []byte

// Loader is responsible for reading the configuration document and
// applying the built-in defaults.
type Loader struct {
	v          *viper.Viper
	configFile string
	warnings   []string
}

// LoaderOption customizes the behavior of the Loader.
type LoaderOption func(*Loader)

// WithConfigFile makes the Loader read the given file instead of the
// default document. Unlike the default document, an explicit file is
// never created on demand and must already exist.
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		l.configFile = path
	}
}

// NewLoader creates a new Loader instance.
func NewLoader(v *viper.Viper, opts ...LoaderOption) *Loader {
	l := &Loader{v: v}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DefaultPath returns the location of the default configuration
// document, honoring XDG_CONFIG_HOME when it is set.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = xdg.ConfigHome
	}
	return filepath.Join(base, build.Slug, "config.toml")
}

// Load reads the configuration document into a Config. When no explicit
// file was requested and the default document does not exist yet, it is
// first created from the embedded template.
func (l *Loader) Load() (*Config, error) {
	explicit := l.configFile != ""
	path := l.configFile
	if path == "" {
		path = DefaultPath()
	}

	created := false
	if !explicit {
		var err error
		created, err = l.bootstrap(path)
		if err != nil {
			return nil, fmt.Errorf("create default config file %s: %w", path, err)
		}
	}

	l.configureViper(path)
	if err := l.bindEnvironment(); err != nil {
		return nil, err
	}

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	presets, err := l.loadPresets(path)
	if err != nil {
		return nil, err
	}

	return &Config{
		Format:         l.v.GetString("format"),
		Timezone:       l.v.GetString("timezone"),
		Formats:        presets,
		Debug:          l.v.GetBool("debug"),
		LogFormat:      l.v.GetString("log_format"),
		ConfigFileUsed: path,
		CreatedDefault: created,
		Warnings:       l.warnings,
	}, nil
}

func (l *Loader) configureViper(path string) {
	l.v.SetConfigFile(path)
	l.v.SetConfigType("toml")

	l.v.SetDefault("format", DefaultFormat)
	l.v.SetDefault("timezone", "")
	l.v.SetDefault("debug", false)
	l.v.SetDefault("log_format", "text")
}

func (l *Loader) bindEnvironment() error {
	l.v.SetEnvPrefix(build.EnvPrefix())
	for _, key := range []string{"debug", "log_format"} {
		if err := l.v.BindEnv(key); err != nil {
			return fmt.Errorf("bind env for %s: %w", key, err)
		}
	}
	return nil
}

// bootstrap writes the embedded template to path unless a document is
// already there. It reports whether a new document was created.
func (l *Loader) bootstrap(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, configTemplate, 0600); err != nil {
		return false, err
	}
	return true, nil
}

// loadPresets decodes the [formats] table directly from the document.
// Viper lowercases the keys of nested maps, and preset names must stay
// case-sensitive.
func (l *Loader) loadPresets(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var doc struct {
		Formats map[string]string `toml:"formats"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	presets := make(map[string]string, len(doc.Formats))
	for name, pattern := range doc.Formats {
		if strings.TrimSpace(pattern) == "" {
			l.warnings = append(l.warnings, fmt.Sprintf("ignoring format preset %q: empty pattern", name))
			continue
		}
		presets[name] = pattern
	}
	return presets, nil
}

// Package config loads the persisted configuration document backing the
// td command: the default output format, the default target timezone,
// and the named format presets. The document is a TOML file under the
// user's config directory, created from an embedded template on first
// run.
package config

// DefaultFormat is the built-in output format used when neither an
// override nor the config file provides one.
const DefaultFormat = "%Y-%m-%dT%H:%M:%S%:z"

// Config is the loaded configuration document. It is read once per
// invocation and never mutated afterwards.
type Config struct {
	// Format is the default output format, either a preset name or a
	// strftime pattern.
	Format string

	// Timezone is the default target zone identifier; empty means the
	// local system zone.
	Timezone string

	// Formats maps preset names to strftime patterns. Names are
	// case-sensitive.
	Formats map[string]string

	// Debug enables debug logging.
	Debug bool

	// LogFormat selects the log output format, "text" or "json".
	LogFormat string

	// ConfigFileUsed is the absolute path of the loaded document.
	ConfigFileUsed string

	// CreatedDefault reports whether this load bootstrapped the default
	// document from the embedded template.
	CreatedDefault bool

	// Warnings collects non-fatal problems found while loading.
	Warnings []string
}

// Package core implements the resolve-and-render pipeline behind the td
// command: it merges override tiers into concrete settings, interprets a
// date/time expression against a reference clock, and renders the result
// in the resolved timezone and format. The package performs no I/O; the
// surrounding CLI supplies parsed flags, an environment snapshot, and
// the loaded configuration as plain data.
package core

import (
	"strings"
	"time"
)

// Overrides carries the optional setting tokens taken from one origin,
// either the command line or the environment. Empty fields fall through
// to the next precedence tier. Now is only ever populated from the
// command line.
type Overrides struct {
	Format   string
	Timezone string
	Now      string
}

// Defaults carries the persisted configuration values the pipeline falls
// back to when no override applies.
type Defaults struct {
	Format   string
	Timezone string
	Presets  map[string]string
}

// Settings is the concrete format/timezone pair a single invocation
// renders with.
type Settings struct {
	Format   string
	Location *time.Location
}

// ResolveToken merges one setting's candidate values by precedence:
// command line first, then environment, then the config file value. A
// tier whose value is empty or whitespace-only is treated as absent, so
// a set-but-empty override never masks a lower tier. The config value
// is returned as-is and may itself be empty.
func ResolveToken(cli, env, config string) string {
	if strings.TrimSpace(cli) != "" {
		return cli
	}
	if strings.TrimSpace(env) != "" {
		return env
	}
	return config
}

// ResolveSettings derives the invocation's settings from the override
// tiers and configuration defaults. Format and timezone are resolved
// independently; the first classified error wins.
func ResolveSettings(cli, env Overrides, def Defaults) (Settings, error) {
	format, err := ResolveFormat(ResolveToken(cli.Format, env.Format, def.Format), def.Presets)
	if err != nil {
		return Settings{}, err
	}

	loc, err := ResolveTimezone(ResolveToken(cli.Timezone, env.Timezone, def.Timezone))
	if err != nil {
		return Settings{}, err
	}

	return Settings{Format: format, Location: loc}, nil
}

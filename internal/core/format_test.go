package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvpaiva/tardis-cli/internal/core"
)

func TestResolveFormat(t *testing.T) {
	presets := map[string]string{
		"br":   "%d/%m/%Y",
		"iso":  "%Y-%m-%dT%H:%M:%S%:z",
		"time": "%H:%M:%S",
	}

	t.Run("PresetNameResolvesToPattern", func(t *testing.T) {
		format, err := core.ResolveFormat("br", presets)
		require.NoError(t, err)
		assert.Equal(t, "%d/%m/%Y", format)
	})

	t.Run("LiteralPatternPassesThrough", func(t *testing.T) {
		format, err := core.ResolveFormat("%Y-%m-%d", presets)
		require.NoError(t, err)
		assert.Equal(t, "%Y-%m-%d", format)
	})

	t.Run("PresetWinsOverLiteralShape", func(t *testing.T) {
		withPatternName := map[string]string{"%H:%M": "%Hh%Mm"}
		format, err := core.ResolveFormat("%H:%M", withPatternName)
		require.NoError(t, err)
		assert.Equal(t, "%Hh%Mm", format)
	})

	t.Run("PresetNamesAreCaseSensitive", func(t *testing.T) {
		_, err := core.ResolveFormat("BR", presets)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrUnknownPreset)
	})

	t.Run("EmptyTokenIsMissingArgument", func(t *testing.T) {
		for _, token := range []string{"", "   ", "\t"} {
			_, err := core.ResolveFormat(token, presets)
			require.Error(t, err, "token %q", token)
			assert.ErrorIs(t, err, core.ErrMissingArgument)
			assert.Contains(t, err.Error(), "no output format specified")
		}
	})

	t.Run("NameShapedTokenWithoutPresetFails", func(t *testing.T) {
		_, err := core.ResolveFormat("nonexistent", presets)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrUnknownPreset)
		assert.Contains(t, err.Error(), "nonexistent")
	})

	t.Run("NoPresetsConfigured", func(t *testing.T) {
		_, err := core.ResolveFormat("br", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrUnknownPreset)

		format, err := core.ResolveFormat("%Y", nil)
		require.NoError(t, err)
		assert.Equal(t, "%Y", format)
	})
}

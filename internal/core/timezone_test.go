package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvpaiva/tardis-cli/internal/core"
)

func TestResolveTimezone(t *testing.T) {
	t.Run("EmptyTokenIsLocalZone", func(t *testing.T) {
		for _, token := range []string{"", "  ", "\t\n"} {
			loc, err := core.ResolveTimezone(token)
			require.NoError(t, err, "token %q", token)
			assert.Equal(t, time.Local, loc)
		}
	})

	t.Run("KnownIdentifiers", func(t *testing.T) {
		for _, token := range []string{"UTC", "America/Sao_Paulo", "Europe/Lisbon", "Asia/Tokyo"} {
			loc, err := core.ResolveTimezone(token)
			require.NoError(t, err, "token %q", token)
			assert.Equal(t, token, loc.String())
		}
	})

	t.Run("SurroundingWhitespaceIsTrimmed", func(t *testing.T) {
		loc, err := core.ResolveTimezone("  UTC  ")
		require.NoError(t, err)
		assert.Equal(t, time.UTC, loc)
	})

	t.Run("UnknownIdentifier", func(t *testing.T) {
		_, err := core.ResolveTimezone("Mars/Phobos")
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrUnsupportedTimezone)
		assert.Contains(t, err.Error(), "invalid timezone ID: Mars/Phobos")
	})
}

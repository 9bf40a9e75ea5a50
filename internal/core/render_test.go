package core_test

import (
	"testing"
	"time"

	timefmt "github.com/itchyny/timefmt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvpaiva/tardis-cli/internal/core"
)

func TestRender(t *testing.T) {
	instant := time.Date(2025, 6, 26, 15, 30, 0, 0, time.FixedZone("", 3600))

	t.Run("AppliesFormat", func(t *testing.T) {
		out, err := core.Render(instant, core.Settings{Format: "%d/%m/%Y", Location: instant.Location()})
		require.NoError(t, err)
		assert.Equal(t, "26/06/2025", out)
	})

	t.Run("ReExpressesInResolvedZone", func(t *testing.T) {
		out, err := core.Render(instant, core.Settings{Format: "%H:%M", Location: time.UTC})
		require.NoError(t, err)
		assert.Equal(t, "14:30", out)
	})

	t.Run("ColonOffsetDirective", func(t *testing.T) {
		out, err := core.Render(instant, core.Settings{Format: "%Y-%m-%dT%H:%M:%S%:z", Location: time.UTC})
		require.NoError(t, err)
		assert.Equal(t, "2025-06-26T14:30:00+00:00", out)
	})

	t.Run("EscapedPercentIsLiteral", func(t *testing.T) {
		out, err := core.Render(instant, core.Settings{Format: "load 100%%", Location: time.UTC})
		require.NoError(t, err)
		assert.Equal(t, "load 100%", out)
	})

	t.Run("PaddingFlagsAccepted", func(t *testing.T) {
		out, err := core.Render(instant, core.Settings{Format: "%-d/%-m/%Y", Location: time.UTC})
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("MalformedPatterns", func(t *testing.T) {
		for _, format := range []string{"bad %Q", "%", "trailing %", "%::d", "%::::z"} {
			_, err := core.Render(instant, core.Settings{Format: format, Location: time.UTC})
			require.Error(t, err, "format %q", format)
			assert.ErrorIs(t, err, core.ErrInvalidDateFormat)
		}
	})

	t.Run("RoundTripReproducesWallClock", func(t *testing.T) {
		const format = "%Y-%m-%d %H:%M:%S"

		out, err := core.Render(instant, core.Settings{Format: format, Location: time.UTC})
		require.NoError(t, err)

		parsed, err := timefmt.Parse(out, format)
		require.NoError(t, err)

		view := instant.In(time.UTC)
		assert.Equal(t, view.Year(), parsed.Year())
		assert.Equal(t, view.Month(), parsed.Month())
		assert.Equal(t, view.Day(), parsed.Day())
		assert.Equal(t, view.Hour(), parsed.Hour())
		assert.Equal(t, view.Minute(), parsed.Minute())
		assert.Equal(t, view.Second(), parsed.Second())
	})
}

package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorScale(t *testing.T) {
	scale := ColorScale("#3366ff")

	assert.Equal(t, []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}, scale.Labels())
	assert.Equal(t, "#3366ff", scale[500])
	assert.Equal(t, "color-mix(in srgb, #3366ff 5%, white)", scale[50])
	assert.Equal(t, "color-mix(in srgb, #3366ff 40%, white)", scale[400])
	assert.Equal(t, "color-mix(in srgb, #3366ff 80%, black)", scale[600])
	assert.Equal(t, "color-mix(in srgb, #3366ff 50%, black)", scale[900])

	seen := map[string]int{}
	for label, value := range scale {
		if other, dup := seen[value]; dup {
			t.Errorf("shade %d repeats shade %d", label, other)
		}
		seen[value] = label
	}
}

func TestResolveScale(t *testing.T) {
	t.Run("white base", func(t *testing.T) {
		resolved, err := ResolveScale("#ffffff")
		require.NoError(t, err)

		assert.Equal(t, "#ffffff", resolved[50])
		assert.Equal(t, "#ffffff", resolved[500])
		assert.Equal(t, "#cccccc", resolved[600])
		assert.Equal(t, "#808080", resolved[900])
	})

	t.Run("black base", func(t *testing.T) {
		resolved, err := ResolveScale("#000")
		require.NoError(t, err)

		assert.Equal(t, "#f2f2f2", resolved[50])
		assert.Equal(t, "#000000", resolved[500])
		assert.Equal(t, "#000000", resolved[900])
	})

	t.Run("shades are distinct", func(t *testing.T) {
		resolved, err := ResolveScale("#3366ff")
		require.NoError(t, err)

		assert.Len(t, resolved, 10)
		assert.Equal(t, "#3366ff", resolved[500])
		seen := map[string]bool{}
		for _, hex := range resolved {
			assert.False(t, seen[hex], hex)
			seen[hex] = true
		}
	})

	t.Run("every grammar", func(t *testing.T) {
		for _, base := range []string{"#f00", "#FF0000", "rgb(255, 0, 0)", "hsl(0,100%,50%)"} {
			resolved, err := ResolveScale(base)
			require.NoError(t, err, base)
			assert.Equal(t, "#ff0000", resolved[500], base)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		for _, base := range []string{"", "red", "#ggg", "rgb(1,2)", "var(--agent-primary)"} {
			_, err := ResolveScale(base)
			require.ErrorIs(t, err, ErrUnsupportedColor, base)
		}
	})
}

func TestParseColorClampsChannels(t *testing.T) {
	c, err := ParseColor("rgb(300, 0, 0)")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-9)
}

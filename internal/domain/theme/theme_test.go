package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClasses(t *testing.T) {
	t.Parallel()

	light := Classes("light")
	assert.Equal(t, "text-slate-900", light.Text)
	assert.Equal(t, "bg-white", light.Card)

	dark := Classes("DARK")
	assert.Equal(t, "text-slate-100", dark.Text)
	assert.Equal(t, "border-slate-700", dark.Border)

	assert.Equal(t, light, Classes("sepia"))
	assert.Equal(t, Light, Parse(""))
}

func TestPattern(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Pattern("wave"), "width='60' height='20'")
	assert.Contains(t, Pattern("Spiral"), "fillRule='evenodd'")
	assert.Equal(t, Pattern("key"), Pattern("meander"))
	assert.True(t, strings.HasPrefix(Pattern("key"), `url("data:image/svg+xml,`))
}

func TestPaletteIsACopy(t *testing.T) {
	t.Parallel()

	p := Palette()
	require.Len(t, p, 3)
	assert.Equal(t, "#f59e0b", p["gold"][500])
	assert.Equal(t, "#1e3a8a", p["aegean"][900])

	p["gold"][500] = "#000000"
	assert.Equal(t, "#f59e0b", Palette()["gold"][500])
}

func TestAnimations(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fadeIn 0.6s ease-out 0s both", FadeIn(0))
	assert.Equal(t, "slideUp 0.8s ease-out 0.2s both", SlideUp(0.2))
}

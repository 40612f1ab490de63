package components

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"

	"retro-clock/internal/settings"
)

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("Lime")
	assert.True(t, ok)
	assert.Equal(t, colornames.Lime, c)

	c, ok = ParseColor("#ff8000")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, c)

	_, ok = ParseColor("sparkly")
	assert.False(t, ok)
	_, ok = ParseColor("#zzzzzz")
	assert.False(t, ok)
}

func TestAppearanceFallsBack(t *testing.T) {
	a := AppearanceFrom(settings.Config{settings.SectionAppearance: settings.Section{
		"background_color": "sparkly",
		"text_color":       "amber",
		"font_family":      "Helvetica",
	}})

	assert.Equal(t, color.Color(colornames.Black), a.Background)
	assert.Equal(t, color.Color(colornames.Lime), a.Text)
	assert.Equal(t, float32(defaultFontSize), a.FontSize)
	assert.False(t, a.Monospace)
}

func TestRetroThemeColors(t *testing.T) {
	th := NewRetroTheme(AppearanceFrom(settings.Defaults()))

	assert.Equal(t, color.Color(colornames.Black), th.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t, color.Color(colornames.Lime), th.Color(theme.ColorNameForeground, theme.VariantLight))
	assert.NotNil(t, th.Font(fyne.TextStyle{}))
}

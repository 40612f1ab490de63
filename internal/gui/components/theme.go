package components

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/colornames"

	"retro-clock/internal/settings"
)

var (
	defaultBackground = colornames.Black
	defaultText       = colornames.Lime
)

const defaultFontSize = 48

// Appearance is the resolved appearance section. Unknown or missing values
// fall back to the retro defaults; appearance never fails.
type Appearance struct {
	Background color.Color
	Text       color.Color
	FontSize   float32
	Monospace  bool
}

func AppearanceFrom(cfg settings.Config) Appearance {
	a := Appearance{
		Background: defaultBackground,
		Text:       defaultText,
		FontSize:   defaultFontSize,
		Monospace:  true,
	}

	if name, err := cfg.String(settings.SectionAppearance, "background_color"); err == nil {
		if c, ok := ParseColor(name); ok {
			a.Background = c
		}
	}
	if name, err := cfg.String(settings.SectionAppearance, "text_color"); err == nil {
		if c, ok := ParseColor(name); ok {
			a.Text = c
		}
	}
	if size, err := cfg.Int(settings.SectionAppearance, "font_size"); err == nil && size > 0 {
		a.FontSize = float32(size)
	}
	if family, err := cfg.String(settings.SectionAppearance, "font_family"); err == nil {
		lower := strings.ToLower(family)
		a.Monospace = strings.Contains(lower, "courier") || strings.Contains(lower, "mono")
	}
	return a
}

// ParseColor accepts CSS colour names and #rrggbb.
func ParseColor(value string) (color.Color, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if c, ok := colornames.Map[value]; ok {
		return c, true
	}
	if len(value) == 7 && value[0] == '#' {
		n, err := strconv.ParseUint(value[1:], 16, 32)
		if err != nil {
			return nil, false
		}
		return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, true
	}
	return nil, false
}

// RetroTheme paints the default fyne theme in the configured colours.
type RetroTheme struct {
	appearance Appearance
}

func NewRetroTheme(a Appearance) *RetroTheme {
	return &RetroTheme{appearance: a}
}

func (t *RetroTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameButton, theme.ColorNameInputBackground,
		theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return t.appearance.Background
	case theme.ColorNameForeground, theme.ColorNamePrimary, theme.ColorNameFocus,
		theme.ColorNamePlaceHolder, theme.ColorNameSeparator, theme.ColorNameInputBorder:
		return t.appearance.Text
	case theme.ColorNameForegroundOnPrimary:
		return t.appearance.Background
	case theme.ColorNameHover, theme.ColorNamePressed:
		r, g, b, _ := t.appearance.Text.RGBA()
		return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0x40}
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (t *RetroTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.appearance.Monospace {
		style.Monospace = true
	}
	return theme.DefaultTheme().Font(style)
}

func (t *RetroTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *RetroTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

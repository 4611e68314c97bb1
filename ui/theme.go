package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	startColor = color.NRGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}
	stopColor  = color.NRGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
)

// CustomTheme colours the Start button green and the Stop button red on
// top of the default theme.
type CustomTheme struct {
	fyne.Theme
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme() fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme()}
}

// Color overrides the primary and error colours.
func (t *CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return startColor
	case theme.ColorNameError:
		return stopColor
	}
	return t.Theme.Color(name, variant)
}

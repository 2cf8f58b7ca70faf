package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines viewer colors.
type ColorTheme struct {
	Background tcell.Color
	Foreground tcell.Color
	BorderFg   tcell.Color
	TitleFg    tcell.Color
	CloseFg    tcell.Color
	StatusFg   tcell.Color
	BackdropBg tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		BorderFg:   tcell.Color33,
		TitleFg:    tcell.ColorWhite,
		CloseFg:    tcell.ColorRed,
		StatusFg:   tcell.Color252,
		BackdropBg: tcell.Color234, // dims the screen around the window
	}
}

func (t ColorTheme) base() tcell.Style {
	return tcell.StyleDefault.Background(t.Background).Foreground(t.Foreground)
}

// gutter is the line-number column, drawn in reverse video.
func (t ColorTheme) gutter() tcell.Style {
	return t.base().Reverse(true)
}

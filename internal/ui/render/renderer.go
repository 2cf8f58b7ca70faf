package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/extract-text/internal/layout"
	"github.com/kk-code-lab/extract-text/internal/viewer"
)

const closeBoxText = "[x]"

// Renderer draws the viewer window.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	title  string
}

// NewRenderer creates a renderer for a view over files input files.
func NewRenderer(screen tcell.Screen, files int) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
		title:  Title(files),
	}
}

// Title is the window title for a view over files input files.
func Title(files int) string {
	return fmt.Sprintf("extract-text: %d file(s)", files)
}

// Render draws the whole frame for the controller's current state.
func (r *Renderer) Render(c *viewer.Controller) {
	r.screen.Clear()

	w, h := r.screen.Size()
	backdrop := tcell.StyleDefault.Background(r.theme.BackdropBg)
	for y := 0; y < h; y++ {
		r.fill(0, y, w, backdrop)
	}

	g := c.Geometry()
	r.drawFrame(g)
	r.drawTitle(g)
	r.drawRows(c)
	r.drawStatusLine(c)

	r.screen.Show()
}

func (r *Renderer) drawFrame(g layout.Geometry) {
	if g.Width < 2 || g.Height < 2 {
		return
	}
	base := r.theme.base()
	border := base.Foreground(r.theme.BorderFg)
	right := g.X + g.Width - 1
	bottom := g.Y + g.Height - 1

	for y := g.Y + 1; y < bottom; y++ {
		r.fill(g.X+1, y, right, base)
		r.screen.SetContent(g.X, y, tcell.RuneVLine, nil, border)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, border)
	}
	for x := g.X + 1; x < right; x++ {
		r.screen.SetContent(x, g.Y, tcell.RuneHLine, nil, border)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, border)
	}
	r.screen.SetContent(g.X, g.Y, tcell.RuneULCorner, nil, border)
	r.screen.SetContent(right, g.Y, tcell.RuneURCorner, nil, border)
	r.screen.SetContent(g.X, bottom, tcell.RuneLLCorner, nil, border)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, border)
}

func (r *Renderer) drawTitle(g layout.Geometry) {
	style := r.theme.base().Foreground(r.theme.TitleFg).Bold(true)
	closeX, closeY, ok := CloseBox(g)
	maxX := g.X + g.Width - 2
	if ok {
		maxX = closeX - 1
		r.drawTextLine(closeX, closeY, len(closeBoxText), closeBoxText, r.theme.base().Foreground(r.theme.CloseFg).Bold(true))
	}
	available := maxX - (g.X + 2)
	if available <= 2 {
		return
	}
	title := r.truncateTextToWidth(r.title, available-2)
	r.drawTextLine(g.X+2, g.Y, available, " "+title+" ", style)
}

func (r *Renderer) drawRows(c *viewer.Controller) {
	g := c.Geometry()
	metrics := layout.TerminalMetrics{}
	x0, y0 := g.ViewportOrigin(metrics)
	viewport := c.Viewport()
	maxX := x0 + viewport.Width
	numbered := c.Mode().Numbered
	originX := c.Scroll().OriginX

	base := r.theme.base()
	gutter := r.theme.gutter()

	rows, _ := c.VisibleRows()
	for i, row := range rows {
		y := y0 + i
		x, skip := x0, originX
		switch {
		case row.LineNumber != "":
			x, skip = r.drawClipped(x, y, maxX, skip, row.LineNumber, gutter)
		case row.Continuation && numbered:
			x, skip = r.drawBlank(x, y, maxX, skip, row.Indent, gutter)
		case row.Continuation:
			x, skip = r.drawBlank(x, y, maxX, skip, row.Indent, base)
		}
		r.drawClipped(x, y, maxX, skip, row.Text, base)
	}
}

func (r *Renderer) drawStatusLine(c *viewer.Controller) {
	g := c.Geometry()
	if g.Height < 2 || g.Width < 6 {
		return
	}
	style := r.theme.base().Foreground(r.theme.StatusFg)
	available := g.Width - 4
	text := r.truncateTextToWidth(" "+StatusLine(c)+" ", available)
	r.drawTextLine(g.X+2, g.Y+g.Height-1, available, text, style)
}

// StatusLine summarizes the visible row range and the display toggles.
func StatusLine(c *viewer.Controller) string {
	rows, first := c.VisibleRows()
	total := c.Layout().ContentHeight
	start, end := 0, 0
	if len(rows) > 0 {
		start, end = first+1, first+len(rows)
	}
	mode := c.Mode()
	return fmt.Sprintf("rows %d-%d/%d  wrap:%s  numbers:%s  n/w/←→/q",
		start, end, total, onOff(mode.Wrapped), onOff(mode.Numbered))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// CloseBox returns the screen position of the close box on the top border.
// ok is false when the window is too narrow to show it.
func CloseBox(g layout.Geometry) (x, y int, ok bool) {
	width := len(closeBoxText)
	if g.Width < width+5 || g.Height < 1 {
		return 0, 0, false
	}
	return g.X + g.Width - width - 2, g.Y, true
}

// InCloseBox reports whether the screen cell (x, y) is part of the close box.
func InCloseBox(g layout.Geometry, x, y int) bool {
	cx, cy, ok := CloseBox(g)
	return ok && y == cy && x >= cx && x < cx+len(closeBoxText)
}

package layout

import "github.com/kk-code-lab/extract-text/internal/document"

const (
	// widthSlackPercent leaves 5% of room past the widest line so it is not
	// flush with the border.
	widthSlackPercent = 105
	// windowPaddingCells covers the border and a one-cell margin per side.
	windowPaddingCells = 4
	// windowChromeRows are the top and bottom border rows.
	windowChromeRows = 2
	minWindowCells   = 40
	minWindowRows    = 5
	// Window width is capped at maxWidthNum/maxWidthDen of the screen and
	// height is heightNum/heightDen of it.
	maxWidthNum = 2
	maxWidthDen = 3
	heightNum   = 4
	heightDen   = 5
)

// Geometry places the viewer window on the screen.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Geometry sizes the window for buf on a screen of the given size. Width
// follows the widest line and is capped at two thirds of the screen; height
// is a fixed fraction of the screen. The wrap toggle does not resize the
// window.
func (e *Engine) Geometry(buf *document.Buffer, numbered bool, screen Size) Geometry {
	cell := e.Metrics.CellWidth()
	widest := e.WidestLine(buf, numbered)

	width := (widest*widthSlackPercent+99)/100 + windowPaddingCells*cell
	if minWidth := minWindowCells * cell; width < minWidth {
		width = minWidth
	}
	if limit := screen.Width * maxWidthNum / maxWidthDen; width > limit {
		width = limit
	}
	// On narrow screens the two-thirds cap falls below a usable window.
	if minWidth := min(minWindowCells*cell, screen.Width); width < minWidth {
		width = minWidth
	}

	height := screen.Height * heightNum / heightDen
	if minHeight := min(minWindowRows, screen.Height); height < minHeight {
		height = minHeight
	}

	return Geometry{
		X:      max(0, (screen.Width-width)/2),
		Y:      max(0, (screen.Height-height)/2),
		Width:  max(0, width),
		Height: max(0, height),
	}
}

// Viewport is the text area inside the window chrome.
func (g Geometry) Viewport(m Metrics) Size {
	return Size{
		Width:  max(0, g.Width-windowPaddingCells*m.CellWidth()),
		Height: max(0, g.Height-windowChromeRows),
	}
}

// ViewportOrigin is the screen position of the first viewport cell.
func (g Geometry) ViewportOrigin(m Metrics) (int, int) {
	return g.X + windowPaddingCells*m.CellWidth()/2, g.Y + windowChromeRows/2
}

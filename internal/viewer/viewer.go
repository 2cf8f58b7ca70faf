// Package viewer owns the view state: display toggles and scroll position.
// Every change recomputes the layout before returning, so callers always
// observe a consistent state.
package viewer

import (
	"sync"

	"github.com/kk-code-lab/extract-text/internal/document"
	"github.com/kk-code-lab/extract-text/internal/layout"
)

// PanStepCells is how far one horizontal pan moves.
const PanStepCells = 4

// Direction is a horizontal pan direction.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// ScrollState is the origin of the viewport within the content, in metric
// units horizontally and rows vertically.
type ScrollState struct {
	OriginX int
	OriginY int
}

// Controller holds DisplayMode and ScrollState. It is not safe for
// concurrent use; the event loop is its only caller.
type Controller struct {
	engine   *layout.Engine
	buffer   *document.Buffer
	screen   layout.Size
	mode     layout.DisplayMode
	scroll   ScrollState
	geometry layout.Geometry
	viewport layout.Size
	result   layout.Result

	teardown  func()
	closeOnce sync.Once
	closed    bool
}

// NewController lays out buf for a screen of the given size. teardown runs
// once, on the first Close.
func NewController(engine *layout.Engine, buf *document.Buffer, screen layout.Size, teardown func()) *Controller {
	c := &Controller{
		engine:   engine,
		buffer:   buf,
		screen:   screen,
		teardown: teardown,
	}
	c.relayout()
	return c
}

func (c *Controller) Mode() layout.DisplayMode  { return c.mode }
func (c *Controller) Scroll() ScrollState       { return c.scroll }
func (c *Controller) Layout() layout.Result     { return c.result }
func (c *Controller) Geometry() layout.Geometry { return c.geometry }
func (c *Controller) Viewport() layout.Size     { return c.viewport }
func (c *Controller) Closed() bool              { return c.closed }

// ToggleNumbered flips line numbering.
func (c *Controller) ToggleNumbered() {
	if c.closed {
		return
	}
	c.mode.Numbered = !c.mode.Numbered
	c.relayoutAnchored()
}

// ToggleWrapped flips wrapping. The horizontal origin is re-clamped, which
// brings it to zero when wrapping is turned on.
func (c *Controller) ToggleWrapped() {
	if c.closed {
		return
	}
	c.mode.Wrapped = !c.mode.Wrapped
	c.relayoutAnchored()
}

// PanHorizontal moves the horizontal origin by one step. It does nothing
// while wrapping is on.
func (c *Controller) PanHorizontal(dir Direction) {
	if c.closed || c.mode.Wrapped {
		return
	}
	c.scroll.OriginX += int(dir) * PanStepCells * c.engine.Metrics.CellWidth()
	c.clamp()
}

// ScrollVertical moves the vertical origin by rows (negative is up).
func (c *Controller) ScrollVertical(rows int) {
	if c.closed {
		return
	}
	c.scroll.OriginY += rows
	c.clamp()
}

func (c *Controller) PageUp()   { c.ScrollVertical(-c.pageRows()) }
func (c *Controller) PageDown() { c.ScrollVertical(c.pageRows()) }

// Home jumps to the first row.
func (c *Controller) Home() {
	if c.closed {
		return
	}
	c.scroll.OriginY = 0
	c.clamp()
}

// End jumps so the last row is visible.
func (c *Controller) End() {
	if c.closed {
		return
	}
	c.scroll.OriginY = c.result.ContentHeight
	c.clamp()
}

// Resize recomputes geometry for a new screen size.
func (c *Controller) Resize(screen layout.Size) {
	if c.closed {
		return
	}
	c.screen = screen
	c.relayoutAnchored()
}

// Close runs the teardown hook. Only the first call has any effect.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		c.closed = true
		if c.teardown != nil {
			c.teardown()
		}
	})
}

// VisibleRows returns the rows inside the viewport and the index of the
// first one.
func (c *Controller) VisibleRows() ([]layout.Row, int) {
	rows := c.result.Rows
	start := c.scroll.OriginY
	if start > len(rows) {
		start = len(rows)
	}
	end := start + c.viewport.Height
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], start
}

func (c *Controller) pageRows() int {
	if c.viewport.Height < 1 {
		return 1
	}
	return c.viewport.Height
}

func (c *Controller) relayout() {
	c.geometry = c.engine.Geometry(c.buffer, c.mode.Numbered, c.screen)
	c.viewport = c.geometry.Viewport(c.engine.Metrics)
	c.result = c.engine.Layout(c.buffer, c.mode, c.viewport.Width)
	c.clamp()
}

// relayoutAnchored keeps the logical line at the top of the viewport in
// place across a relayout.
func (c *Controller) relayoutAnchored() {
	anchor := -1
	if rows := c.result.Rows; c.scroll.OriginY >= 0 && c.scroll.OriginY < len(rows) {
		anchor = rows[c.scroll.OriginY].Line
	}
	c.relayout()
	if anchor < 0 {
		return
	}
	for i, row := range c.result.Rows {
		if row.Line == anchor {
			c.scroll.OriginY = i
			break
		}
	}
	c.clamp()
}

func (c *Controller) clamp() {
	maxX := c.result.ContentWidth - c.viewport.Width
	if maxX < 0 {
		maxX = 0
	}
	if c.scroll.OriginX > maxX {
		c.scroll.OriginX = maxX
	}
	if c.scroll.OriginX < 0 {
		c.scroll.OriginX = 0
	}

	maxY := c.result.ContentHeight - c.viewport.Height
	if maxY < 0 {
		maxY = 0
	}
	if c.scroll.OriginY > maxY {
		c.scroll.OriginY = maxY
	}
	if c.scroll.OriginY < 0 {
		c.scroll.OriginY = 0
	}
}

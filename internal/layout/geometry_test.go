package layout

import (
	"strings"
	"testing"

	"github.com/kk-code-lab/extract-text/internal/document"
)

func TestGeometryFollowsWidestLine(t *testing.T) {
	e := newTestEngine()
	buf := document.NewBuffer(strings.Repeat("w", 100) + "\nshort")

	g := e.Geometry(buf, false, Size{Width: 300, Height: 50})
	if g.Width != 109 {
		t.Fatalf("expected width ceil(100*1.05)+4=109, got %d", g.Width)
	}
	if g.Height != 40 {
		t.Fatalf("expected height 0.8*50=40, got %d", g.Height)
	}
	if g.X != (300-109)/2 || g.Y != 5 {
		t.Fatalf("expected centred window, got x=%d y=%d", g.X, g.Y)
	}
	if vp := g.Viewport(e.Metrics); vp.Width < 100 || vp.Height != 38 {
		t.Fatalf("viewport %+v should fit the widest line", vp)
	}
}

func TestGeometryCappedAtTwoThirds(t *testing.T) {
	e := newTestEngine()
	buf := document.NewBuffer(strings.Repeat("w", 1000))

	g := e.Geometry(buf, false, Size{Width: 300, Height: 60})
	if g.Width != 200 {
		t.Fatalf("expected width capped at 200, got %d", g.Width)
	}
}

func TestGeometryMinimumWidth(t *testing.T) {
	e := newTestEngine()
	g := e.Geometry(document.NewBuffer("hi"), false, Size{Width: 200, Height: 40})
	if g.Width != minWindowCells {
		t.Fatalf("expected minimum width %d, got %d", minWindowCells, g.Width)
	}

	narrow := e.Geometry(document.NewBuffer(strings.Repeat("w", 100)), false, Size{Width: 45, Height: 10})
	if narrow.Width != 40 {
		t.Fatalf("expected minimum width on a narrow screen, got %d", narrow.Width)
	}

	tiny := e.Geometry(document.NewBuffer("hi"), false, Size{Width: 20, Height: 3})
	if tiny.Width != 20 || tiny.Height != 3 || tiny.X != 0 || tiny.Y != 0 {
		t.Fatalf("expected window to fill a tiny screen, got %+v", tiny)
	}
}

func TestGeometryAccountsForNumberColumn(t *testing.T) {
	e := newTestEngine()
	buf := document.NewBuffer(strings.Repeat("w", 100))
	plain := e.Geometry(buf, false, Size{Width: 400, Height: 50})
	numbered := e.Geometry(buf, true, Size{Width: 400, Height: 50})
	if numbered.Width <= plain.Width {
		t.Fatalf("numbered window (%d) should be wider than plain (%d)", numbered.Width, plain.Width)
	}
}

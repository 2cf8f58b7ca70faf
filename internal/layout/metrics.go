package layout

import "github.com/kk-code-lab/extract-text/internal/textutil"

// Metrics measures text for layout. CellWidth is the advance of one
// monospace character; every fixed-size quantity (number column, indent,
// padding) is a multiple of it.
type Metrics interface {
	CellWidth() int
	StringWidth(text string) int
}

// TerminalMetrics measures in terminal cells.
type TerminalMetrics struct{}

func (TerminalMetrics) CellWidth() int { return 1 }

func (TerminalMetrics) StringWidth(text string) int {
	return textutil.DisplayWidth(text)
}

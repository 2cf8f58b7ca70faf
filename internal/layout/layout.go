// Package layout turns a document buffer and display mode into styled lines,
// visual rows and window geometry.
package layout

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/extract-text/internal/document"
	"github.com/kk-code-lab/extract-text/internal/textutil"
	"github.com/rivo/uniseg"
)

// NumberColumnCells is the width of the line-number field: six right-aligned
// digits and a space. Lines past 999999 overflow it.
const NumberColumnCells = 7

const numberFormat = "%6d "

// DisplayMode holds the view toggles.
type DisplayMode struct {
	Numbered bool
	Wrapped  bool
}

// Size is a width/height pair in metric units.
type Size struct {
	Width  int
	Height int
}

// StyledLine is one logical buffer line prepared for display.
type StyledLine struct {
	// LineNumber is the formatted number column, empty when numbering is off.
	LineNumber string
	Body       string
	// IndentWidth is the offset of wrapped continuation rows. Zero when
	// wrapping is off.
	IndentWidth int
}

// Row is one visual row on screen.
type Row struct {
	Line         int
	LineNumber   string
	Text         string
	Indent       int
	Continuation bool
}

// Result is a complete layout. It is rebuilt for every change and never
// patched.
type Result struct {
	Lines         []StyledLine
	Rows          []Row
	ContentWidth  int
	ContentHeight int
}

// Engine lays out buffers. It holds configuration only.
type Engine struct {
	Metrics  Metrics
	TabWidth int
}

// NewEngine returns an engine measuring with m.
func NewEngine(m Metrics, tabWidth int) *Engine {
	if m == nil {
		m = TerminalMetrics{}
	}
	if tabWidth <= 0 {
		tabWidth = textutil.DefaultTabWidth
	}
	return &Engine{Metrics: m, TabWidth: tabWidth}
}

// Layout computes the result for buf shown in mode within viewportWidth.
// Equal inputs always produce equal results.
func (e *Engine) Layout(buf *document.Buffer, mode DisplayMode, viewportWidth int) Result {
	if viewportWidth < 0 {
		viewportWidth = 0
	}
	lines := bufferLines(buf)
	gutter := e.gutterWidth(mode.Numbered)
	indent := 0
	if mode.Wrapped {
		indent = e.continuationIndent(mode.Numbered)
	}

	result := Result{
		Lines: make([]StyledLine, len(lines)),
		Rows:  make([]Row, 0, len(lines)),
	}
	for i, line := range lines {
		styled := StyledLine{
			LineNumber:  lineNumberText(i, mode.Numbered),
			Body:        e.displayBody(line),
			IndentWidth: indent,
		}
		result.Lines[i] = styled

		if !mode.Wrapped {
			result.Rows = append(result.Rows, Row{Line: i, LineNumber: styled.LineNumber, Text: styled.Body})
			width := e.Metrics.StringWidth(styled.LineNumber) + e.Metrics.StringWidth(styled.Body)
			if width > result.ContentWidth {
				result.ContentWidth = width
			}
			continue
		}

		segments := e.wrap(styled.Body, viewportWidth-gutter, viewportWidth-indent)
		for j, segment := range segments {
			row := Row{Line: i, Text: segment}
			offset := gutter
			if j == 0 {
				row.LineNumber = styled.LineNumber
			} else {
				row.Continuation = true
				row.Indent = indent
				offset = indent
			}
			result.Rows = append(result.Rows, row)
			if width := offset + e.Metrics.StringWidth(segment); width > result.ContentWidth {
				result.ContentWidth = width
			}
		}
	}

	if mode.Wrapped && result.ContentWidth > viewportWidth {
		result.ContentWidth = viewportWidth
	}
	result.ContentHeight = len(result.Rows)
	return result
}

// WidestLine is the unwrapped width of the widest line including the number
// column when numbered.
func (e *Engine) WidestLine(buf *document.Buffer, numbered bool) int {
	widest := 0
	for i, line := range bufferLines(buf) {
		width := e.Metrics.StringWidth(lineNumberText(i, numbered)) + e.Metrics.StringWidth(e.displayBody(line))
		if width > widest {
			widest = width
		}
	}
	return widest
}

func bufferLines(buf *document.Buffer) []string {
	if buf == nil || len(buf.Lines) == 0 {
		return []string{""}
	}
	return buf.Lines
}

func lineNumberText(index int, numbered bool) string {
	if !numbered {
		return ""
	}
	return fmt.Sprintf(numberFormat, index+1)
}

func (e *Engine) gutterWidth(numbered bool) int {
	if !numbered {
		return 0
	}
	return NumberColumnCells * e.Metrics.CellWidth()
}

// Continuation rows line up with the first character of the logical line:
// under the body when numbered, one cell in otherwise.
func (e *Engine) continuationIndent(numbered bool) int {
	if numbered {
		return e.gutterWidth(true)
	}
	return e.Metrics.CellWidth()
}

// CR of CRLF line endings is not drawn and a stray CR inside a line shows as
// a space; tabs expand to fixed stops.
func (e *Engine) displayBody(line string) string {
	if strings.ContainsRune(line, '\r') {
		line = strings.TrimSuffix(line, "\r")
		line = strings.ReplaceAll(line, "\r", " ")
	}
	return textutil.ExpandTabs(line, e.TabWidth)
}

// wrap breaks text at line-break opportunities so the first row fits in
// first and later rows in rest. Segments wider than a row are split between
// grapheme clusters.
func (e *Engine) wrap(text string, first, rest int) []string {
	cell := e.Metrics.CellWidth()
	if first < cell {
		first = cell
	}
	if rest < cell {
		rest = cell
	}
	if text == "" {
		return []string{""}
	}

	var rows []string
	var current strings.Builder
	currentWidth := 0
	limit := first
	flush := func() {
		rows = append(rows, e.fitRow(current.String(), limit))
		current.Reset()
		currentWidth = 0
		limit = rest
	}

	state := -1
	remaining := text
	for remaining != "" {
		var segment string
		segment, remaining, _, state = uniseg.FirstLineSegmentInString(remaining, state)
		visible := e.Metrics.StringWidth(strings.TrimRight(segment, " "))
		if currentWidth+visible <= limit {
			current.WriteString(segment)
			currentWidth += e.Metrics.StringWidth(segment)
			continue
		}
		if current.Len() > 0 {
			flush()
		}
		for e.Metrics.StringWidth(strings.TrimRight(segment, " ")) > limit {
			head, tail := e.splitClusters(segment, limit)
			rows = append(rows, head)
			limit = rest
			segment = tail
		}
		current.WriteString(segment)
		currentWidth = e.Metrics.StringWidth(segment)
	}
	if current.Len() > 0 || len(rows) == 0 {
		flush()
	}
	return rows
}

// fitRow drops trailing blanks that would run past the row.
func (e *Engine) fitRow(row string, limit int) string {
	if e.Metrics.StringWidth(row) <= limit {
		return row
	}
	return strings.TrimRight(row, " ")
}

// splitClusters returns the longest prefix of text made of whole grapheme
// clusters that fits in limit, and the remainder. The prefix holds at least
// one cluster.
func (e *Engine) splitClusters(text string, limit int) (string, string) {
	width := 0
	consumed := 0
	state := -1
	remaining := text
	for remaining != "" {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(remaining, state)
		w := e.Metrics.StringWidth(cluster)
		if consumed > 0 && width+w > limit {
			break
		}
		width += w
		consumed += len(cluster)
		remaining = rest
		state = newState
	}
	return text[:consumed], text[consumed:]
}

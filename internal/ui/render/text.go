package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/extract-text/internal/textutil"
	"github.com/rivo/uniseg"
)

func (r *Renderer) measureTextWidth(text string) int {
	return textutil.DisplayWidth(text)
}

func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}

	if r.measureTextWidth(text) <= maxWidth {
		return text
	}

	const ellipsis = "…"
	if maxWidth <= 1 {
		return ellipsis
	}

	available := maxWidth - 1
	var builder strings.Builder
	currentWidth := 0
	state := -1
	rest := text
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		width := textutil.ClusterWidth(cluster)
		if currentWidth+width > available {
			break
		}
		builder.WriteString(cluster)
		currentWidth += width
	}

	builder.WriteString(ellipsis)
	return builder.String()
}

// drawTextLine draws text from startX and returns the column after it.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x, _ := r.drawClipped(startX, y, startX+maxWidth, 0, text, style)
	return x
}

// drawClipped draws text between x and maxX after dropping its first skip
// cells. A wide cluster cut by either edge is drawn as blanks. It returns
// the next column and the part of skip not consumed by text.
func (r *Renderer) drawClipped(x, y, maxX, skip int, text string, style tcell.Style) (int, int) {
	state := -1
	rest := text
	for rest != "" && x < maxX {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		width := textutil.ClusterWidth(cluster)

		if skip > 0 {
			if width <= skip {
				skip -= width
				continue
			}
			x = r.fill(x, y, min(maxX, x+width-skip), style)
			skip = 0
			continue
		}

		if x+width > maxX {
			x = r.fill(x, y, maxX, style)
			break
		}
		runes := []rune(cluster)
		r.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += width
	}
	return x, skip
}

// drawBlank draws width blank cells after dropping skip of them.
func (r *Renderer) drawBlank(x, y, maxX, skip, width int, style tcell.Style) (int, int) {
	if width <= skip {
		return x, skip - width
	}
	return r.fill(x, y, min(maxX, x+width-skip), style), 0
}

func (r *Renderer) fill(x, y, maxX int, style tcell.Style) int {
	for ; x < maxX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
	return x
}

package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const DefaultTabWidth = 4

// ExpandTabs replaces tab characters with spaces respecting terminal column width.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	builder.Grow(len(text) + tabWidth)
	column := 0
	state := -1
	rest := text
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" {
			spaces := tabWidth - (column % tabWidth)
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		}
		builder.WriteString(cluster)
		column += ClusterWidth(cluster)
	}
	return builder.String()
}

// DisplayWidth reports the printable width of text accounting for wide runes
// and grapheme clusters.
func DisplayWidth(text string) int {
	width := 0
	state := -1
	rest := text
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		width += ClusterWidth(cluster)
	}
	return width
}

// ClusterWidth is the cell width of a single grapheme cluster. Zero-width
// clusters still occupy one cell so the cursor always advances.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}

// Package document assembles extracted sections into one text buffer.
package document

import (
	"fmt"
	"strings"
)

const sectionSeparator = "\n\n"

// Section is the labeled text extracted from one input file.
type Section struct {
	Label         string
	RawText       string
	SanitizedText string
}

// Header is the line that introduces a section in the buffer.
func (s Section) Header() string {
	return fmt.Sprintf("--- %s ---", s.Label)
}

// Buffer is the read-only text shown by the viewer. Lines[i] is display row i
// when wrapping is off.
type Buffer struct {
	FullText string
	Lines    []string
}

// NewBuffer splits text on line feeds. An empty text still has one line.
func NewBuffer(text string) *Buffer {
	return &Buffer{
		FullText: text,
		Lines:    strings.Split(text, "\n"),
	}
}

// LineCount returns the number of logical lines.
func (b *Buffer) LineCount() int {
	if b == nil {
		return 0
	}
	return len(b.Lines)
}

// Assemble joins sections in order, each introduced by its header, with one
// blank line between sections.
func Assemble(sections []Section) *Buffer {
	blocks := make([]string, 0, len(sections))
	for _, section := range sections {
		blocks = append(blocks, section.Header()+"\n"+section.SanitizedText)
	}
	return NewBuffer(strings.Join(blocks, sectionSeparator))
}

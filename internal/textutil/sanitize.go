package textutil

import (
	"strings"
	"unicode"
)

const (
	replacementChar       = '\uFFFD'
	objectReplacementChar = '\uFFFC'
)

// Sanitize drops scalars that have no visible rendering: control characters
// other than tab, LF and CR, private-use and format characters (zero-width
// joiners, bidi marks, BOM, soft hyphen), U+FFFD and U+FFFC. Everything else
// is kept in order. Invalid UTF-8 decodes to U+FFFD and is dropped with it.
func Sanitize(text string) string {
	for i, r := range text {
		if dropRune(r) {
			return sanitizeFrom(text, i)
		}
	}
	return text
}

func sanitizeFrom(text string, start int) string {
	var b strings.Builder
	b.Grow(len(text))
	b.WriteString(text[:start])
	for _, r := range text[start:] {
		if dropRune(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func dropRune(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return false
	case replacementChar, objectReplacementChar:
		return true
	}
	if r < 0x20 || r == 0x7f {
		return true
	}
	if r < 0x80 {
		return false
	}
	return unicode.Is(unicode.Cc, r) || unicode.Is(unicode.Co, r) || unicode.Is(unicode.Cf, r)
}

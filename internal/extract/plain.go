package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var errUndecodable = errors.New("no decoder accepted the content")

// TextDecoder is one step of the plain-text fallback chain.
type TextDecoder struct {
	Name   string
	Decode func([]byte) (string, bool)
}

// DefaultDecoders is UTF-8, then Mac Roman, then ISO-8859-1. The last step
// maps every byte, so the chain never runs out for real input.
func DefaultDecoders() []TextDecoder {
	return []TextDecoder{
		{Name: "utf-8", Decode: decodeUTF8},
		{Name: "macintosh", Decode: charmapDecoder(charmap.Macintosh)},
		{Name: "iso-8859-1", Decode: charmapDecoder(charmap.ISO8859_1)},
	}
}

// PlainTextExtractor decodes raw bytes of unknown encoding.
type PlainTextExtractor struct {
	Decoders []TextDecoder
}

func (e *PlainTextExtractor) Extract(_ context.Context, path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return PlaceholderPlainText, fmt.Errorf("read file: %w", err)
	}
	text, _, err := DecodeText(content, e.Decoders)
	if err != nil {
		return PlaceholderPlainText, err
	}
	return normalizeLineEndings(text), nil
}

// normalizeLineEndings turns CRLF and classic Mac CR endings into LF.
func normalizeLineEndings(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// DecodeText returns content decoded by the first decoder that accepts it,
// and that decoder's name. Byte-order-marked UTF-8 and UTF-16 are recognized
// before the chain runs.
func DecodeText(content []byte, decoders []TextDecoder) (string, string, error) {
	if text, name, ok := decodeWithBOM(content); ok {
		return text, name, nil
	}
	for _, decoder := range decoders {
		if text, ok := decoder.Decode(content); ok {
			return text, decoder.Name, nil
		}
	}
	return "", "", errUndecodable
}

func decodeUTF8(content []byte) (string, bool) {
	if !utf8.Valid(content) {
		return "", false
	}
	return string(content), true
}

func charmapDecoder(cm *charmap.Charmap) func([]byte) (string, bool) {
	return func(content []byte) (string, bool) {
		out, err := cm.NewDecoder().Bytes(content)
		if err != nil {
			return "", false
		}
		return string(out), true
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

func decodeWithBOM(content []byte) (string, string, bool) {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		rest := content[len(bomUTF8):]
		if !utf8.Valid(rest) {
			return "", "", false
		}
		return string(rest), "utf-8", true
	case bytes.HasPrefix(content, bomUTF16LE):
		return decodeUTF16(content, unicode.LittleEndian, "utf-16le")
	case bytes.HasPrefix(content, bomUTF16BE):
		return decodeUTF16(content, unicode.BigEndian, "utf-16be")
	default:
		return "", "", false
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness, name string) (string, string, bool) {
	if len(content)%2 != 0 {
		return "", "", false
	}
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil || !utf8.Valid(out) {
		return "", "", false
	}
	return string(out), name, true
}

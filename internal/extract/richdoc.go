package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/lu4p/cat"
)

// rtfdTextEntry is the RTF body inside a macOS .rtfd bundle directory.
const rtfdTextEntry = "TXT.rtf"

var (
	errLegacyWord     = errors.New("unsupported legacy Word format (.doc)")
	errNoDocumentText = errors.New("no text found in document")
)

// RichDocExtractor reads word-processor documents.
type RichDocExtractor struct{}

func (RichDocExtractor) Extract(_ context.Context, path string) (string, error) {
	text, err := readRichDocument(path)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errNoDocumentText
	}
	if err != nil {
		return fmt.Sprintf(PlaceholderDocumentFormat, err), err
	}
	return text, nil
}

func readRichDocument(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return readDOCX(path)
	case ".odt", ".rtf":
		return cat.File(path)
	case ".rtfd":
		return readRTFD(path)
	case ".doc":
		return "", errLegacyWord
	default:
		return "", fmt.Errorf("unsupported document type %q", filepath.Ext(path))
	}
}

func readRTFD(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		// Flattened .rtfd exports are plain RTF.
		return cat.File(path)
	}
	body := filepath.Join(path, rtfdTextEntry)
	if _, err := os.Stat(body); err != nil {
		return "", fmt.Errorf("rtfd bundle has no %s", rtfdTextEntry)
	}
	return cat.File(body)
}

func readDOCX(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	var lines []string
	for _, item := range doc.Document.Body.Items {
		switch v := item.(type) {
		case *docx.Paragraph:
			lines = append(lines, docxParagraphText(v))
		case *docx.Table:
			lines = append(lines, docxTableLines(v)...)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return buf.String()
}

// Table rows become one line each with tab-separated cells.
func docxTableLines(table *docx.Table) []string {
	lines := make([]string, 0, len(table.TableRows))
	for _, row := range table.TableRows {
		cells := make([]string, 0, len(row.TableCells))
		for _, cell := range row.TableCells {
			parts := make([]string, 0, len(cell.Paragraphs))
			for _, para := range cell.Paragraphs {
				if text := docxParagraphText(para); text != "" {
					parts = append(parts, text)
				}
			}
			cells = append(cells, strings.Join(parts, " "))
		}
		lines = append(lines, strings.Join(cells, "\t"))
	}
	return lines
}

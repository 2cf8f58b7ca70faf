package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

var errNoTextLayer = errors.New("pdf has no text layer")

// PDFExtractor reads the embedded text layer of a PDF.
type PDFExtractor struct{}

func (PDFExtractor) Extract(_ context.Context, path string) (string, error) {
	text, err := readPDFText(path)
	if err != nil {
		return PlaceholderPDFOpen, fmt.Errorf("open pdf: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return PlaceholderPDFNoText, errNoTextLayer
	}
	return text, nil
}

func readPDFText(path string) (text string, err error) {
	// The parser panics on some malformed object streams.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, pageText)
	}
	return strings.Join(pages, "\n"), nil
}

// Package extract routes input files to the extractor for their category and
// turns the result into sanitized, labeled sections.
package extract

import (
	"context"

	"github.com/kk-code-lab/extract-text/internal/document"
	"github.com/kk-code-lab/extract-text/internal/format"
	"github.com/kk-code-lab/extract-text/internal/ocr"
	"github.com/kk-code-lab/extract-text/internal/textutil"
	"go.uber.org/zap"
)

// Placeholders substituted for text when extraction fails.
const (
	PlaceholderPDFOpen        = "[Could not open PDF]"
	PlaceholderPDFNoText      = "[No text found in PDF]"
	PlaceholderImageLoad      = "[Could not load image]"
	PlaceholderImageNoText    = "[No text recognized in image]"
	PlaceholderDocumentFormat = "[Could not read document: %s]"
	PlaceholderPlainText      = "[Could not read file as text]"
)

// Extractor produces the raw text of one file. On failure it returns the
// placeholder to show in place of the text together with the cause.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// Options configure a Dispatcher.
type Options struct {
	// Recognizer performs OCR for image inputs. Nil disables recognition.
	Recognizer ocr.Recognizer
	// Decoders overrides the plain-text decoding chain.
	Decoders []TextDecoder
	Logger   *zap.Logger
}

// Dispatcher selects an Extractor by category.
type Dispatcher struct {
	extractors map[format.Category]Extractor
	logger     *zap.Logger
}

// NewDispatcher wires the default extractor for every category.
func NewDispatcher(opts Options) *Dispatcher {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	decoders := opts.Decoders
	if decoders == nil {
		decoders = DefaultDecoders()
	}
	return &Dispatcher{
		extractors: map[format.Category]Extractor{
			format.PDF:          &PDFExtractor{},
			format.Image:        &ImageExtractor{Recognizer: opts.Recognizer},
			format.RichDocument: &RichDocExtractor{},
			format.PlainText:    &PlainTextExtractor{Decoders: decoders},
		},
		logger: logger,
	}
}

// Register replaces the extractor used for category.
func (d *Dispatcher) Register(category format.Category, extractor Extractor) {
	d.extractors[category] = extractor
}

// Extract returns the raw text for file, or its placeholder on failure.
// Each file is attempted once.
func (d *Dispatcher) Extract(ctx context.Context, file format.InputFile) string {
	extractor, ok := d.extractors[file.Category]
	if !ok {
		extractor = d.extractors[format.PlainText]
	}

	text, err := extractor.Extract(ctx, file.Path)
	if err != nil {
		d.logger.Warn("extraction failed",
			zap.String("path", file.Path),
			zap.Stringer("category", file.Category),
			zap.Error(err))
		return text
	}
	d.logger.Debug("extracted",
		zap.String("path", file.Path),
		zap.Stringer("category", file.Category),
		zap.Int("bytes", len(text)))
	return text
}

// Section extracts file and sanitizes the result.
func (d *Dispatcher) Section(ctx context.Context, file format.InputFile) document.Section {
	raw := d.Extract(ctx, file)
	return document.Section{
		Label:         file.Label(),
		RawText:       raw,
		SanitizedText: textutil.Sanitize(raw),
	}
}

// ExtractAll processes paths one at a time in the given order.
func (d *Dispatcher) ExtractAll(ctx context.Context, paths []string) []document.Section {
	sections := make([]document.Section, 0, len(paths))
	for _, path := range paths {
		sections = append(sections, d.Section(ctx, format.NewInputFile(path)))
	}
	return sections
}

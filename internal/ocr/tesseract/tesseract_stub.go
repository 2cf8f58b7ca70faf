//go:build !ocr

package tesseract

import (
	"context"
	"errors"

	"github.com/kk-code-lab/extract-text/internal/ocr"
)

// ErrUnavailable is returned when the binary was built without the ocr tag.
var ErrUnavailable = errors.New("OCR not enabled; build with -tags ocr and tesseract installed")

// Engine stub used when built without the ocr tag.
type Engine struct {
	opts ocr.Options
}

// New returns an engine that always fails with ErrUnavailable.
func New(opts ocr.Options) *Engine {
	return &Engine{opts: opts}
}

// Available reports whether this build can run Tesseract.
func Available() bool { return false }

// Recognize always fails with ErrUnavailable.
func (e *Engine) Recognize(_ context.Context, _ ocr.Image) (string, error) {
	return "", ErrUnavailable
}

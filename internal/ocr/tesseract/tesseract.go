//go:build ocr

// Package tesseract provides the Tesseract-backed OCR engine.
package tesseract

import (
	"context"
	"fmt"
	"strings"

	"github.com/kk-code-lab/extract-text/internal/ocr"
	"github.com/otiai10/gosseract/v2"
)

// Engine recognizes text with a fresh gosseract client per image.
type Engine struct {
	opts          ocr.Options
	clientFactory func() *gosseract.Client
}

// New constructs a Tesseract engine with the given options.
func New(opts ocr.Options) *Engine {
	return &Engine{opts: opts, clientFactory: gosseract.NewClient}
}

// Available reports whether this build can run Tesseract.
func Available() bool { return true }

// Recognize runs OCR synchronously on img.
func (e *Engine) Recognize(_ context.Context, img ocr.Image) (string, error) {
	c := e.clientFactory()
	defer func() {
		_ = c.Close()
	}()

	if err := c.SetImageFromBytes(img.Data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ocr.ErrDecode, img.Name, err)
	}
	if len(e.opts.Languages) > 0 {
		if err := c.SetLanguage(e.opts.Languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}
	if e.opts.PageSegMode > 0 {
		if err := c.SetPageSegMode(gosseract.PageSegMode(e.opts.PageSegMode)); err != nil {
			return "", fmt.Errorf("set page segmentation: %w", err)
		}
	}
	if e.opts.LanguageCorrection {
		if err := c.SetVariable(gosseract.SettableVariable("tessedit_enable_dict_correction"), "1"); err != nil {
			return "", fmt.Errorf("enable dictionary correction: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		if isDecodeFailure(err) {
			return "", fmt.Errorf("%w: %s: %v", ocr.ErrDecode, img.Name, err)
		}
		return "", fmt.Errorf("recognize %s: %w", img.Name, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ocr.ErrNoText
	}
	return text, nil
}

// Package ocr defines the recognition capability used for image inputs and
// the adapter that presents callback-based engines as blocking calls.
package ocr

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrDecode reports that the engine could not decode the image payload.
	ErrDecode = errors.New("ocr: image could not be decoded")
	// ErrNoText reports that recognition finished without any text.
	ErrNoText = errors.New("ocr: no text recognized")
)

// Image is an encoded image handed to an engine.
type Image struct {
	// Name identifies the source file in logs and errors.
	Name string
	// Data holds the encoded bytes exactly as read from disk.
	Data []byte
	// Format is the decoder name reported by the image registry ("png",
	// "tiff", ...) or empty when no Go decoder recognized the payload.
	Format string
}

// Options tune recognition. The zero value is completed by Defaults.
type Options struct {
	Languages          []string
	PageSegMode        int
	LanguageCorrection bool
}

// DefaultPageSegMode is fully automatic page segmentation.
const DefaultPageSegMode = 3

// Defaults returns the accurate recognition profile: automatic page
// segmentation, English, dictionary correction on.
func Defaults() Options {
	return Options{
		Languages:          []string{"eng"},
		PageSegMode:        DefaultPageSegMode,
		LanguageCorrection: true,
	}
}

// Recognizer turns an image into text. Implementations block until the
// result is available.
type Recognizer interface {
	Recognize(ctx context.Context, img Image) (string, error)
}

// AsyncRecognizer reports its result through a callback, possibly from
// another goroutine. done must be called exactly once. The bundled
// Tesseract engine is synchronous and does not implement it; this is the
// entry point for callback-based engines, adapted with Blocking.
type AsyncRecognizer interface {
	RecognizeAsync(ctx context.Context, img Image, done func(text string, err error))
}

// Blocking wraps an AsyncRecognizer so callers see a synchronous Recognize.
// Engines that already block, such as tesseract.Engine, are passed to the
// extractors directly.
func Blocking(engine AsyncRecognizer) Recognizer {
	return &blockingRecognizer{engine: engine}
}

type blockingRecognizer struct {
	engine AsyncRecognizer
}

type recognition struct {
	text string
	err  error
}

// Recognize waits for the callback. There is no cancellation: once started,
// recognition runs to completion or failure.
func (b *blockingRecognizer) Recognize(ctx context.Context, img Image) (string, error) {
	resultCh := make(chan recognition, 1)
	var once sync.Once
	b.engine.RecognizeAsync(ctx, img, func(text string, err error) {
		once.Do(func() {
			resultCh <- recognition{text: text, err: err}
		})
	})
	res := <-resultCh
	return res.text, res.err
}

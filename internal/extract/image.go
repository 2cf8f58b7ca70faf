package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/extract-text/internal/ocr"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats without a Go decoder. Their bytes go to the OCR engine as-is and
// the engine reports whether it could decode them.
var engineDecodedExtensions = map[string]struct{}{
	".heic":  {},
	".heics": {},
	".jp2":   {},
	".jxl":   {},
}

var errNoRecognizer = errors.New("no OCR engine configured")

// ImageExtractor decodes an image and runs OCR on it.
type ImageExtractor struct {
	Recognizer ocr.Recognizer
}

func (e *ImageExtractor) Extract(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlaceholderImageLoad, fmt.Errorf("read image: %w", err)
	}
	img, err := loadImage(path, data)
	if err != nil {
		return PlaceholderImageLoad, err
	}
	if e.Recognizer == nil {
		return PlaceholderImageNoText, errNoRecognizer
	}

	text, err := e.Recognizer.Recognize(ctx, img)
	switch {
	case errors.Is(err, ocr.ErrDecode):
		return PlaceholderImageLoad, err
	case err != nil:
		return PlaceholderImageNoText, err
	case strings.TrimSpace(text) == "":
		return PlaceholderImageNoText, ocr.ErrNoText
	}
	return text, nil
}

func loadImage(path string, data []byte) (ocr.Image, error) {
	name := filepath.Base(path)
	_, formatName, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		return ocr.Image{Name: name, Data: data, Format: formatName}, nil
	}
	if errors.Is(err, image.ErrFormat) && len(data) > 0 {
		if _, ok := engineDecodedExtensions[strings.ToLower(filepath.Ext(path))]; ok {
			return ocr.Image{Name: name, Data: data}, nil
		}
	}
	return ocr.Image{}, fmt.Errorf("decode image: %w", err)
}

// Package format classifies input files by extension.
package format

import (
	"path/filepath"
	"strings"
)

// Category groups the file types that share an extraction strategy.
type Category int

const (
	PlainText Category = iota
	PDF
	Image
	RichDocument
)

func (c Category) String() string {
	switch c {
	case PDF:
		return "pdf"
	case Image:
		return "image"
	case RichDocument:
		return "richdoc"
	default:
		return "text"
	}
}

var extensionCategories = map[string]Category{
	".pdf": PDF,

	".png":   Image,
	".jpg":   Image,
	".jpeg":  Image,
	".tiff":  Image,
	".tif":   Image,
	".heic":  Image,
	".heics": Image,
	".webp":  Image,
	".gif":   Image,
	".bmp":   Image,
	".jp2":   Image,
	".jxl":   Image,

	".docx": RichDocument,
	".doc":  RichDocument,
	".odt":  RichDocument,
	".rtf":  RichDocument,
	".rtfd": RichDocument,
}

// Classify maps path to a Category using only its extension.
// Unknown and missing extensions are PlainText.
func Classify(path string) Category {
	ext := strings.ToLower(filepath.Ext(path))
	if category, ok := extensionCategories[ext]; ok {
		return category
	}
	return PlainText
}

// InputFile is one command-line argument paired with its category.
type InputFile struct {
	Path     string
	Category Category
}

// NewInputFile classifies path without touching the filesystem.
func NewInputFile(path string) InputFile {
	return InputFile{Path: path, Category: Classify(path)}
}

// Label is the section header text for the file.
func (f InputFile) Label() string {
	return filepath.Base(f.Path)
}

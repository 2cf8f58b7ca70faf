package config

import (
	"github.com/kk-code-lab/extract-text/internal/ocr"
	"github.com/kk-code-lab/extract-text/internal/textutil"
)

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if len(cfg.OCR.Languages) == 0 {
		cfg.OCR.Languages = []string{"eng"}
	}
	if cfg.OCR.PageSegMode == 0 {
		cfg.OCR.PageSegMode = ocr.DefaultPageSegMode
	}
	if cfg.OCR.LanguageCorrection == nil {
		t := true
		cfg.OCR.LanguageCorrection = &t
	}
	if cfg.View.TabWidth <= 0 {
		cfg.View.TabWidth = textutil.DefaultTabWidth
	}
}

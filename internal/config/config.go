// Package config loads the optional extract-text configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/extract-text/internal/ocr"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "EXTRACT_TEXT_CONFIG"
	// EnvLogFile overrides log_file.
	EnvLogFile = "EXTRACT_TEXT_LOG"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool       `yaml:"debug"`
	LogFile string     `yaml:"log_file"`
	OCR     OCRConfig  `yaml:"ocr"`
	View    ViewConfig `yaml:"view"`
}

// OCRConfig holds image recognition settings.
type OCRConfig struct {
	Languages          []string `yaml:"languages"`
	PageSegMode        int      `yaml:"page_seg_mode"`
	LanguageCorrection *bool    `yaml:"language_correction"`
}

// ViewConfig holds display settings.
type ViewConfig struct {
	TabWidth int `yaml:"tab_width"`
}

// Options converts the section to engine options.
func (c OCRConfig) Options() ocr.Options {
	opts := ocr.Defaults()
	if len(c.Languages) > 0 {
		opts.Languages = append([]string(nil), c.Languages...)
	}
	if c.PageSegMode > 0 {
		opts.PageSegMode = c.PageSegMode
	}
	if c.LanguageCorrection != nil {
		opts.LanguageCorrection = *c.LanguageCorrection
	}
	return opts
}

// DefaultPath returns $EXTRACT_TEXT_CONFIG, or config.yaml under the user
// config directory.
func DefaultPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "extract-text", "config.yaml"), nil
}

// Default returns a config with every default applied.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}

// Load reads and parses the config file at path and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile, filepath.Dir(path))
	}
	return &cfg, nil
}

// LoadDefault loads the config from DefaultPath and applies environment
// overrides. A missing file is not an error. On any other error the
// defaults are returned together with the error.
func LoadDefault() (*Config, error) {
	cfg, err := loadDefault()
	if logFile := os.Getenv(EnvLogFile); logFile != "" {
		cfg.LogFile = logFile
	}
	return cfg, err
}

func loadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), err
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), err
	}
	return cfg, nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// "~/" paths and other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	path = strings.TrimPrefix(path, "~/")
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/extract-text/internal/app"
	"github.com/kk-code-lab/extract-text/internal/config"
	"github.com/kk-code-lab/extract-text/internal/document"
	"github.com/kk-code-lab/extract-text/internal/extract"
	"github.com/kk-code-lab/extract-text/internal/logging"
	"github.com/kk-code-lab/extract-text/internal/ocr/tesseract"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const usage = `extract-text - Extract and view text from documents and images

USAGE:
    extract-text <file1> [file2 ...]

OPTIONS:
    -h, --help            Show this help message and exit

Supported inputs: PDF, images (OCR), docx/odt/rtf/rtfd and plain text.
Image OCR needs a build with -tags ocr and the tesseract and leptonica
libraries installed.
Keys: arrows/hjkl scroll, n numbers, w wrap, y copy, q/Esc close.
`

func printHelp(w io.Writer) {
	fmt.Fprint(w, usage)
}

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printHelp(stderr)
		return 1
	}
	if args[0] == "-h" || args[0] == "--help" {
		printHelp(stdout)
		return 0
	}
	if !isTerminal() {
		fmt.Fprintln(stderr, "extract-text: no terminal available to display the text")
		return 1
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: using default configuration: %v\n", err)
	}
	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: logging disabled: %v\n", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	buf := extractDocument(context.Background(), args, cfg, logger)

	app, err := apppkg.NewApplication(apppkg.Options{
		Buffer:   buf,
		Files:    len(args),
		TabWidth: cfg.View.TabWidth,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing display: %v\n", err)
		return 1
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	return 0
}

func extractDocument(ctx context.Context, paths []string, cfg *config.Config, logger *zap.Logger) *document.Buffer {
	opts := extract.Options{Logger: logger}
	if tesseract.Available() {
		opts.Recognizer = tesseract.New(cfg.OCR.Options())
	} else {
		logger.Info("OCR unavailable in this build")
	}
	dispatcher := extract.NewDispatcher(opts)
	sections := dispatcher.ExtractAll(ctx, paths)
	return document.Assemble(sections)
}

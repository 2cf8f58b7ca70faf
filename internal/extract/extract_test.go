package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kk-code-lab/extract-text/internal/format"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubExtractor struct {
	text  string
	err   error
	paths []string
}

func (s *stubExtractor) Extract(_ context.Context, path string) (string, error) {
	s.paths = append(s.paths, path)
	return s.text, s.err
}

func TestDispatcherRoutesByCategory(t *testing.T) {
	d := NewDispatcher(Options{})
	pdf := &stubExtractor{text: "pdf text"}
	img := &stubExtractor{text: "image text"}
	doc := &stubExtractor{text: "doc text"}
	txt := &stubExtractor{text: "plain text"}
	d.Register(format.PDF, pdf)
	d.Register(format.Image, img)
	d.Register(format.RichDocument, doc)
	d.Register(format.PlainText, txt)

	ctx := context.Background()
	tests := map[string]string{
		"a.pdf":    "pdf text",
		"b.PNG":    "image text",
		"c.docx":   "doc text",
		"d.txt":    "plain text",
		"Makefile": "plain text",
	}
	for path, want := range tests {
		if got := d.Extract(ctx, format.NewInputFile(path)); got != want {
			t.Fatalf("Extract(%q)=%q want %q", path, got, want)
		}
	}
	if len(pdf.paths) != 1 || len(img.paths) != 1 || len(doc.paths) != 1 || len(txt.paths) != 2 {
		t.Fatalf("unexpected routing: pdf=%v img=%v doc=%v txt=%v", pdf.paths, img.paths, doc.paths, txt.paths)
	}
}

func TestSectionSanitizesText(t *testing.T) {
	d := NewDispatcher(Options{})
	d.Register(format.PlainText, &stubExtractor{text: "ok\x00\u200bdone\ufffd"})

	section := d.Section(context.Background(), format.NewInputFile("/tmp/dir/notes.txt"))
	if section.Label != "notes.txt" {
		t.Fatalf("expected base name label, got %q", section.Label)
	}
	if section.RawText != "ok\x00\u200bdone\ufffd" {
		t.Fatalf("raw text should be kept verbatim, got %q", section.RawText)
	}
	if section.SanitizedText != "okdone" {
		t.Fatalf("expected sanitized text %q, got %q", "okdone", section.SanitizedText)
	}
}

func TestSectionKeepsPlaceholderOnFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	d := NewDispatcher(Options{Logger: zap.New(core)})
	d.Register(format.PDF, &stubExtractor{text: PlaceholderPDFNoText, err: errNoTextLayer})

	section := d.Section(context.Background(), format.NewInputFile("scan.pdf"))
	if section.SanitizedText != "[No text found in PDF]" {
		t.Fatalf("expected placeholder, got %q", section.SanitizedText)
	}
	entries := logs.FilterMessage("extraction failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one warning, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["category"]; got != "pdf" {
		t.Fatalf("expected category field pdf, got %v", got)
	}
}

func TestExtractAllPreservesArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	names := []string{"z.txt", "a.txt", "m.txt"}
	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("body of "+name), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		paths = append(paths, path)
	}

	sections := NewDispatcher(Options{}).ExtractAll(context.Background(), paths)
	if len(sections) != len(names) {
		t.Fatalf("expected %d sections, got %d", len(names), len(sections))
	}
	for i, name := range names {
		if sections[i].Label != name || sections[i].SanitizedText != "body of "+name {
			t.Fatalf("section %d = %+v, want label %q", i, sections[i], name)
		}
	}
}

func TestExtractAllContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	if err := os.WriteFile(good, []byte("fine"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	missing := filepath.Join(dir, "missing.pdf")

	sections := NewDispatcher(Options{}).ExtractAll(context.Background(), []string{missing, good})
	if len(sections) != 2 {
		t.Fatalf("expected both sections, got %d", len(sections))
	}
	if sections[0].SanitizedText != PlaceholderPDFOpen {
		t.Fatalf("expected open placeholder for missing pdf, got %q", sections[0].SanitizedText)
	}
	if sections[1].SanitizedText != "fine" {
		t.Fatalf("expected second file extracted, got %q", sections[1].SanitizedText)
	}
}

func TestDispatcherUsesConfiguredDecoders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.txt")
	if err := os.WriteFile(path, []byte("abc"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	refuse := TextDecoder{Name: "none", Decode: func([]byte) (string, bool) { return "", false }}

	d := NewDispatcher(Options{Decoders: []TextDecoder{refuse}})
	if got := d.Extract(context.Background(), format.NewInputFile(path)); got != PlaceholderPlainText {
		t.Fatalf("expected plain-text placeholder, got %q", got)
	}
}

func TestStubErrorsAreNotFatal(t *testing.T) {
	d := NewDispatcher(Options{})
	d.Register(format.RichDocument, &stubExtractor{text: "[Could not read document: boom]", err: errors.New("boom")})
	if got := d.Extract(context.Background(), format.NewInputFile("x.odt")); got != "[Could not read document: boom]" {
		t.Fatalf("unexpected result %q", got)
	}
}

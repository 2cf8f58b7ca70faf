package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kk-code-lab/extract-text/internal/config"
	"go.uber.org/zap"
)

func TestRunWithoutArgumentsPrintsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "USAGE:") {
		t.Fatalf("usage not printed to stderr: %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		var stdout, stderr bytes.Buffer
		if code := run([]string{flag}, &stdout, &stderr); code != 0 {
			t.Fatalf("%s: exit code = %d, want 0", flag, code)
		}
		if !strings.Contains(stdout.String(), "extract-text <file1>") {
			t.Fatalf("%s: help not printed: %q", flag, stdout.String())
		}
	}
}

func TestRunWithoutTerminalFails(t *testing.T) {
	orig := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	var stdout, stderr bytes.Buffer
	if code := run([]string{"a.txt"}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "no terminal") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestExtractDocumentAssemblesInArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	if err := os.WriteFile(first, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	buf := extractDocument(ctx, []string{second, first}, config.Default(), zap.NewNop())
	want := "--- second.txt ---\ntwo\n\n--- first.txt ---\none"
	if buf.FullText != want {
		t.Fatalf("FullText = %q, want %q", buf.FullText, want)
	}
}

package app

import (
	"errors"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/extract-text/internal/document"
	"go.uber.org/zap"
)

func TestHandleCopyReportsCommandFailure(t *testing.T) {
	app := newTestApplication(t, "hello")
	app.clipboardAvail = true
	app.clipboardCmd = []string{"fake-clip", "--flag"}

	var recorded []string
	var err error
	withFakeCommandBuilder(t, 7, &recorded, func() {
		err = app.handleCopy()
	})

	if err == nil {
		t.Fatalf("expected clipboard failure")
	}
	if got := err.Error(); !strings.Contains(got, "fake-clip") {
		t.Fatalf("expected error mentioning command, got %q", got)
	}
	assertCommandRecorded(t, recorded, []string{"fake-clip", "--flag"})
}

func TestHandleCopySucceeds(t *testing.T) {
	app := newTestApplication(t, "hello")
	app.clipboardAvail = true
	app.clipboardCmd = []string{"fake-clip"}

	var recorded []string
	var err error
	withFakeCommandBuilder(t, 0, &recorded, func() {
		err = app.handleCopy()
	})

	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	assertCommandRecorded(t, recorded, []string{"fake-clip"})
}

func TestHandleCopyWithoutClipboard(t *testing.T) {
	app := newTestApplication(t, "hello")
	app.clipboardAvail = false

	if err := app.handleCopy(); !errors.Is(err, errClipboardUnavailable) {
		t.Fatalf("expected errClipboardUnavailable, got %v", err)
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	code, err := strconv.Atoi(os.Getenv("HELPER_PROCESS_EXIT"))
	if err != nil {
		code = 1
	}
	os.Exit(code)
}

func newTestApplication(t *testing.T, text string) *Application {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init screen: %v", err)
	}
	screen.SetSize(80, 24)
	app := newApplication(screen, Options{
		Buffer: document.NewBuffer(text),
		Files:  1,
		Logger: zap.NewNop(),
	})
	t.Cleanup(func() {
		_ = app.Close()
	})
	return app
}

func withFakeCommandBuilder(t *testing.T, exitCode int, recorded *[]string, fn func()) {
	t.Helper()
	orig := commandBuilder
	commandBuilder = func(name string, args ...string) *exec.Cmd {
		if recorded != nil {
			*recorded = append([]string{name}, args...)
		}
		return helperProcessCommand(exitCode, name, args...)
	}
	defer func() {
		commandBuilder = orig
	}()
	fn()
}

func helperProcessCommand(exitCode int, name string, args ...string) *exec.Cmd {
	cmdArgs := []string{"-test.run=TestHelperProcess", "--", name}
	cmdArgs = append(cmdArgs, args...)
	cmd := exec.Command(os.Args[0], cmdArgs...)
	cmd.Env = append(os.Environ(),
		"GO_WANT_HELPER_PROCESS=1",
		"HELPER_PROCESS_EXIT="+strconv.Itoa(exitCode),
	)
	return cmd
}

func assertCommandRecorded(t *testing.T, recorded, want []string) {
	t.Helper()
	if len(recorded) != len(want) {
		t.Fatalf("expected command %v, got %v", want, recorded)
	}
	for i := range want {
		if recorded[i] != want[i] {
			t.Fatalf("expected command %v, got %v", want, recorded)
		}
	}
}

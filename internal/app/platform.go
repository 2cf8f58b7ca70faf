package app

import (
	"os/exec"
	"runtime"
	"strings"
)

func detectClipboard() ([]string, bool) {
	return detectClipboardInternal(runtime.GOOS, exec.LookPath)
}

func detectClipboardInternal(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	trySingle := func(candidates ...string) ([]string, bool) {
		for _, candidate := range candidates {
			if candidate == "" {
				continue
			}
			if path, err := lookPath(candidate); err == nil && path != "" {
				return []string{path}, true
			}
		}
		return nil, false
	}

	if strings.EqualFold(goos, "windows") {
		if cmd, ok := trySingle("clip.exe", "clip"); ok {
			return cmd, true
		}
		for _, ps := range []string{"powershell", "powershell.exe", "pwsh"} {
			if path, err := lookPath(ps); err == nil && path != "" {
				return []string{path, "-NoLogo", "-NoProfile", "-Command", "Set-Clipboard"}, true
			}
		}
	}

	// X11 tools default to the PRIMARY selection.
	commands := []struct {
		name string
		args []string
	}{
		{"pbcopy", nil},
		{"xclip", []string{"-selection", "clipboard"}},
		{"wl-copy", nil},
		{"xsel", []string{"--clipboard", "--input"}},
	}
	for _, cmd := range commands {
		if resolved, err := lookPath(cmd.name); err == nil && resolved != "" {
			return append([]string{resolved}, cmd.args...), true
		}
	}

	return nil, false
}
